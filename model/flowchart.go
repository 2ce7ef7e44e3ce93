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

// FlowNode is one node of a flowchart.
type FlowNode struct {
	Text       string // display text of the node
	IsQuestion bool   // true, if declared with the decision shape
}

// FlowEdge is one directed connection between two flowchart nodes. From and
// To are node identifiers, Label may be empty.
type FlowEdge struct {
	From  string
	To    string
	Label string
}

// Flowchart is the structural model of a flowchart diagram. Order keeps the
// node identifiers in declaration order, so that narration is deterministic.
type Flowchart struct {
	Order []string
	Nodes map[string]FlowNode
	Edges []FlowEdge
}

// NewFlowchart creates an empty flowchart model.
func NewFlowchart() *Flowchart {
	return &Flowchart{Nodes: make(map[string]FlowNode)}
}

// StructureType returns the diagram type of this model.
func (*Flowchart) StructureType() diagram.Type { return diagram.TypeFlowchart }

// IsEmpty returns true, if neither nodes nor edges were found.
func (fc *Flowchart) IsEmpty() bool { return len(fc.Nodes) == 0 && len(fc.Edges) == 0 }

// AddNode registers a node, keeping the first declaration of an identifier.
func (fc *Flowchart) AddNode(id string, node FlowNode) {
	if _, found := fc.Nodes[id]; !found {
		fc.Order = append(fc.Order, id)
		fc.Nodes[id] = node
	}
}

// EnsureNode registers an implicitly declared node, one that only ever
// appeared as an edge endpoint. Its identifier doubles as its display text.
func (fc *Flowchart) EnsureNode(id string) {
	fc.AddNode(id, FlowNode{Text: id})
}

// NodeText returns the display text for the given node identifier.
func (fc *Flowchart) NodeText(id string) string {
	if node, found := fc.Nodes[id]; found && node.Text != "" {
		return node.Text
	}
	return id
}

// Decisions returns the number of question nodes.
func (fc *Flowchart) Decisions() int {
	result := 0
	for _, id := range fc.Order {
		if fc.Nodes[id].IsQuestion {
			result++
		}
	}
	return result
}
