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

// MindmapNode is one node of the rooted mindmap tree.
type MindmapNode struct {
	Text     string
	Children []*MindmapNode
}

// Mindmap is the structural model of a mindmap. Root is nil for an empty
// mindmap.
type Mindmap struct {
	Root *MindmapNode
}

// StructureType returns the diagram type of this model.
func (*Mindmap) StructureType() diagram.Type { return diagram.TypeMindmap }

// IsEmpty returns true, if no root node was found.
func (mm *Mindmap) IsEmpty() bool { return mm.Root == nil }

// Walk calls the given function for every node, depth-first, parents before
// their children.
func (mm *Mindmap) Walk(visit func(node *MindmapNode, depth int)) {
	var walk func(node *MindmapNode, depth int)
	walk = func(node *MindmapNode, depth int) {
		visit(node, depth)
		for _, child := range node.Children {
			walk(child, depth+1)
		}
	}
	if mm.Root != nil {
		walk(mm.Root, 0)
	}
}
