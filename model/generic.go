//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package model

import "codeberg.org/t73fde/accviz/diagram"

// Generic is the structural model of every dialect without a dedicated
// parser. It only counts structural features.
type Generic struct {
	Type        diagram.Type
	Elements    int // node-like lines
	Connections int // lines with a directional arrow
	Sections    int // section / subgraph lines
	Labels      int // quoted label occurrences
	Lines       int // significant lines
}

// StructureType returns the diagram type the counts were made for.
func (g *Generic) StructureType() diagram.Type { return g.Type }

// IsEmpty returns true, if not even a significant line was counted.
func (g *Generic) IsEmpty() bool { return g.Lines == 0 }
