//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package svg

import (
	"strings"

	"github.com/beevik/etree"
)

// Class tokens of rendered flowchart elements.
const (
	classNode  = "node"
	classNodes = "nodes"
)

// Class tokens of purely decorative connector elements.
var edgeClassTokens = []string{
	"edgePath", "edgePaths", "edgeLabel", "edgeLabels", "flowchart-link",
}

// Decorative shape tags within a node group.
var decorativeShapeTags = map[string]bool{
	"rect": true, "circle": true, "ellipse": true, "polygon": true, "path": true,
}

// isFlowchart inspects the rendered markup for a flowchart-specific
// structural marker. The decision is made on the rendered output alone,
// independent of any source-text classification.
func (t *transformer) isFlowchart() bool {
	if strings.HasPrefix(t.root.SelectAttrValue("aria-roledescription", ""), "flowchart") {
		return true
	}
	found := false
	walkElements(t.root, func(e *etree.Element) {
		if e.Tag == "g" && hasClassToken(e, classNode) {
			found = true
		}
	})
	return found
}

// applyFlowchartSemantics marks the rendered node collection with list
// semantics so assistive technology can navigate the nodes sequentially,
// names each node group after its visible text, and hides the decorative
// and connector elements from the accessibility tree.
func (t *transformer) applyFlowchartSemantics() {
	if !t.isFlowchart() {
		return
	}
	walkElements(t.root, func(e *etree.Element) {
		switch {
		case e.Tag == "g" && hasClassToken(e, classNodes):
			e.CreateAttr("role", "list")
		case e.Tag == "g" && hasClassToken(e, classNode):
			t.annotateNodeGroup(e)
		case e.Tag == "g" && isEdgeGroup(e):
			e.CreateAttr("aria-hidden", "true")
		case e.Tag == "marker":
			e.CreateAttr("aria-hidden", "true")
		}
	})
}

func isEdgeGroup(e *etree.Element) bool {
	for _, token := range edgeClassTokens {
		if hasClassToken(e, token) {
			return true
		}
	}
	return false
}

// annotateNodeGroup gives one rendered node group its list-item role and an
// accessible name, and hides everything that would be announced twice.
func (t *transformer) annotateNodeGroup(group *etree.Element) {
	group.CreateAttr("role", "listitem")

	// A fresh title as first child names the group; an already present one
	// is replaced, never duplicated. It must go before the text extraction,
	// so that a previously injected name is not read as visible text.
	for _, child := range group.ChildElements() {
		if child.Tag == "title" {
			group.RemoveChild(child)
		}
	}
	label := textContent(group)
	if label != "" {
		title := etree.NewElement("title")
		title.SetText(label)
		group.InsertChildAt(0, title)
	}

	// Shapes are decoration: the title carries the name.
	walkElements(group, func(e *etree.Element) {
		if decorativeShapeTags[e.Tag] {
			e.CreateAttr("aria-hidden", "true")
		}
	})

	// A fragmented label announces once: the first text run stays visible
	// to assistive technology, the rest is hidden. This assumes the
	// rendering engine emits the fragments in reading order; out-of-order
	// fragments are a known limitation.
	first := true
	walkElements(group, func(e *etree.Element) {
		if e.Tag != "text" {
			return
		}
		if first {
			first = false
			return
		}
		e.CreateAttr("aria-hidden", "true")
	})
}
