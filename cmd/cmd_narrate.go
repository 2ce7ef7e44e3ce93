//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"codeberg.org/t73fde/accviz/encoder"
	"codeberg.org/t73fde/accviz/enhancer/gemini"
	"codeberg.org/t73fde/accviz/model"
	"codeberg.org/t73fde/accviz/parser"
)

// ---------- Subcommand: narrate ---------------------------------------------

func init() {
	RegisterCommand(Command{
		Name: "narrate",
		Func: cmdNarrate,
		Flags: func(fs *flag.FlagSet) {
			fs.String("t", encoder.GetDefaultEncoding().String(), "target narrative format")
			fs.Bool("enhance", false, "improve the narrative through the Gemini API")
		},
	})
}

func cmdNarrate(fs *flag.FlagSet) (int, error) {
	encVal := fs.Lookup("t").Value.String()
	enc := encoder.ParseEncoding(encVal)
	encdr := encoder.Create(enc)
	if encdr == nil {
		fmt.Fprintf(os.Stderr, "Unknown format %q\n", encVal)
		return 2, nil
	}
	src, err := readSource(fs.Args())
	if err != nil {
		return 2, err
	}
	d := parser.Parse(src)

	if fs.Lookup("enhance").Value.String() == "true" && enc == encoder.EncodingHTML {
		if narrateEnhanced(d, encdr) {
			return 0, nil
		}
	}
	if _, err = encdr.WriteDiagram(os.Stdout, d); err != nil {
		return 2, err
	}
	fmt.Println()
	return 0, nil
}

// narrateEnhanced prints the improved narrative and reports success. Any
// failure keeps the base narrative, which the caller then prints.
func narrateEnhanced(d *model.Diagram, encdr encoder.Encoder) bool {
	ctx := context.Background()
	enh, err := gemini.New(ctx, os.Getenv(EnvGeminiKey), "", newLogger("gemini"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Enhancement unavailable: %v\n", err)
		return false
	}
	var sb strings.Builder
	if _, err = encdr.WriteDiagram(&sb, d); err != nil {
		return false
	}
	improved, err := enh.Enhance(ctx, sb.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Enhancement failed: %v\n", err)
		return false
	}
	fmt.Println(improved)
	return true
}
