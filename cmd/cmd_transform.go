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
	"flag"
	"fmt"
	"os"

	"codeberg.org/t73fde/accviz/diagram"
	"codeberg.org/t73fde/accviz/svg"
)

// ---------- Subcommand: transform -------------------------------------------

func init() {
	RegisterCommand(Command{
		Name: "transform",
		Func: cmdTransform,
		Flags: func(fs *flag.FlagSet) {
			fs.String("svg", "", "rendered SVG document to transform")
			fs.String("o", "", "write the accessible SVG to this file instead of stdout")
		},
	})
}

func cmdTransform(fs *flag.FlagSet) (int, error) {
	svgFile := fs.Lookup("svg").Value.String()
	if svgFile == "" {
		fmt.Fprintln(os.Stderr, "Flag -svg is required")
		return 1, nil
	}
	doc, err := os.ReadFile(svgFile)
	if err != nil {
		return 2, err
	}
	src, err := readSource(fs.Args())
	if err != nil {
		return 2, err
	}
	_, m, _ := diagram.EnsureMeta(src)

	result, err := svg.Transform(string(doc), m)
	if err != nil {
		result = svg.ApplyMinimalRole(string(doc))
		fmt.Fprintf(os.Stderr, "Transform failed, minimal role applied: %v\n", err)
	}
	if outFile := fs.Lookup("o").Value.String(); outFile != "" {
		if err = os.WriteFile(outFile, []byte(result), 0600); err != nil {
			return 2, err
		}
		return 0, nil
	}
	fmt.Println(result)
	return 0, nil
}
