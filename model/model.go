//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package model provides the dialect-specific structural models extracted
// from diagram source text.
package model

import "codeberg.org/t73fde/accviz/diagram"

// Structure is implemented by every structural model. It is derived purely
// from the source text and never reads or writes the rendered vector markup.
type Structure interface {
	// StructureType returns the diagram type the model was built for.
	StructureType() diagram.Type

	// IsEmpty returns true, if the model contains no extracted element.
	IsEmpty() bool
}

// Diagram bundles everything the narrative encoders need for one source.
type Diagram struct {
	Type      diagram.Type
	Meta      diagram.Meta
	Structure Structure
}
