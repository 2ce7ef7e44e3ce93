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
)

// ---------- Subcommand: annotate --------------------------------------------

func init() {
	RegisterCommand(Command{
		Name: "annotate",
		Func: cmdAnnotate,
		Flags: func(fs *flag.FlagSet) {
			fs.Bool("w", false, "write the annotated source back to the file")
		},
	})
}

func cmdAnnotate(fs *flag.FlagSet) (int, error) {
	writeBack := fs.Lookup("w").Value.String() == "true"
	args := fs.Args()
	if writeBack && (len(args) < 1 || args[0] == "-") {
		fmt.Fprintln(os.Stderr, "Flag -w needs a file argument")
		return 1, nil
	}
	src, err := readSource(args)
	if err != nil {
		return 2, err
	}
	annotated, m, modified := diagram.EnsureMeta(src)
	if modified {
		fmt.Fprintf(os.Stderr, "Annotations inserted: title=%q, description=%q\n",
			m.Title, m.Description)
	} else {
		fmt.Fprintln(os.Stderr, "Source already carries title and description")
	}
	if writeBack {
		if !modified {
			return 0, nil
		}
		if err = os.WriteFile(args[0], []byte(annotated), 0600); err != nil {
			return 2, err
		}
		return 0, nil
	}
	fmt.Print(annotated)
	return 0, nil
}
