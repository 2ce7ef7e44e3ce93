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

	"codeberg.org/t73fde/accviz/contrast"
)

// ---------- Subcommand: contrast --------------------------------------------

func init() {
	RegisterCommand(Command{
		Name: "contrast",
		Func: cmdContrast,
		Flags: func(fs *flag.FlagSet) {
			fs.Bool("large", false, "use the thresholds for large text")
		},
	})
}

func cmdContrast(fs *flag.FlagSet) (int, error) {
	args := fs.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Command contrast needs two color arguments")
		return 1, nil
	}
	c1, err := contrast.Parse(args[0])
	if err != nil {
		return 2, err
	}
	c2, err := contrast.Parse(args[1])
	if err != nil {
		return 2, err
	}
	ratio := contrast.Ratio(c1, c2)
	large := fs.Lookup("large").Value.String() == "true"
	fmt.Printf("%.2f:1 (%s)\n", ratio, contrast.Level(ratio, large))
	return 0, nil
}
