//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package main is the starting point for the accviz command.
package main

import (
	"codeberg.org/t73fde/accviz/cmd"
)

// Version variable. Will be filled by build process.
var version string = "(unknown)"

func main() {
	cmd.Main("AccViz", version)
}
