//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package svg_test

import (
	"strings"
	"testing"

	"github.com/beevik/etree"

	"codeberg.org/t73fde/accviz/diagram"
	"codeberg.org/t73fde/accviz/svg"
)

const plainSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><rect x="1" y="1" width="10" height="10"/></svg>`

const flowchartSVG = `<svg viewBox="0 0 400 200" aria-roledescription="flowchart-v2">` +
	`<defs><marker id="arrowhead"><path d="M 0 0 L 10 5"/></marker></defs>` +
	`<g class="edgePaths"><path class="flowchart-link" d="M 10 10 L 50 50"/></g>` +
	`<g class="edgeLabels"><g class="edgeLabel"><text>yes</text></g></g>` +
	`<g class="nodes">` +
	`<g class="node default"><rect width="40" height="20"/><text>Sta</text><text>rt</text></g>` +
	`<g class="node default"><polygon points="0,0 10,10"/><text>End</text></g>` +
	`<g class="node default"><circle r="5"/></g>` +
	`</g></svg>`

func parse(t *testing.T, doc string) *etree.Document {
	t.Helper()
	tree := etree.NewDocument()
	if err := tree.ReadFromString(doc); err != nil {
		t.Fatalf("result not parseable: %v", err)
	}
	return tree
}

func TestTransformBasic(t *testing.T) {
	t.Parallel()
	m := diagram.Meta{Title: "My diagram", Description: "What it shows"}
	got, err := svg.Transform(plainSVG, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := parse(t, got).Root()
	if role := root.SelectAttrValue("role", ""); role != "img" {
		t.Errorf("expected role img, but got %q", role)
	}
	if vb := root.SelectAttrValue("viewBox", ""); vb != "0 0 100 100" {
		t.Errorf("viewBox not preserved: %q", vb)
	}
	if ns := root.SelectAttrValue("xmlns", ""); ns != "http://www.w3.org/2000/svg" {
		t.Errorf("namespace missing: %q", ns)
	}

	children := root.ChildElements()
	if len(children) < 2 || children[0].Tag != "title" || children[1].Tag != "desc" {
		t.Fatalf("expected title and desc as first children, but got %v", children)
	}
	title, desc := children[0], children[1]
	if title.Text() != "My diagram" || desc.Text() != "What it shows" {
		t.Errorf("unexpected node texts: %q, %q", title.Text(), desc.Text())
	}

	// The labelling attribute lists the title id first, then the desc id.
	labelled := root.SelectAttrValue("aria-labelledby", "")
	ids := strings.Fields(labelled)
	if len(ids) != 2 || ids[0] != title.SelectAttrValue("id", "") || ids[1] != desc.SelectAttrValue("id", "") {
		t.Errorf("labelling attribute %q does not match ids %q/%q",
			labelled, title.SelectAttrValue("id", ""), desc.SelectAttrValue("id", ""))
	}
}

func TestTransformTitleOnly(t *testing.T) {
	t.Parallel()
	got, err := svg.Transform(plainSVG, diagram.Meta{Title: "Only title"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := parse(t, got).Root()
	if len(root.SelectElements("desc")) != 0 {
		t.Error("unexpected desc node")
	}
	titles := root.SelectElements("title")
	if len(titles) != 1 {
		t.Fatalf("expected exactly one title, but got %d", len(titles))
	}
	if got := root.SelectAttrValue("aria-labelledby", ""); got != titles[0].SelectAttrValue("id", "") {
		t.Errorf("labelling attribute %q must reference only the title id", got)
	}
}

func TestTransformIdempotentMetadata(t *testing.T) {
	t.Parallel()
	m := diagram.Meta{Title: "T", Description: "D"}
	once, err := svg.Transform(plainSVG, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := svg.Transform(once, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := parse(t, twice).Root()
	if n := len(root.SelectElements("title")); n != 1 {
		t.Errorf("expected 1 title after re-run, but got %d", n)
	}
	if n := len(root.SelectElements("desc")); n != 1 {
		t.Errorf("expected 1 desc after re-run, but got %d", n)
	}
}

func TestTransformUniqueIDs(t *testing.T) {
	t.Parallel()
	m := diagram.Meta{Title: "Same title"}
	seen := make(map[string]bool)
	for range 5 {
		got, err := svg.Transform(plainSVG, m)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		id := parse(t, got).Root().SelectElements("title")[0].SelectAttrValue("id", "")
		if id == "" {
			t.Fatal("empty title id")
		}
		if seen[id] {
			t.Fatalf("id %q generated twice", id)
		}
		seen[id] = true
	}
}

func TestTransformParseFailure(t *testing.T) {
	t.Parallel()
	if _, err := svg.Transform("<svg><unclosed>", diagram.Meta{Title: "T"}); err == nil {
		t.Error("expected a parse error")
	}
	if _, err := svg.Transform("", diagram.Meta{Title: "T"}); err == nil {
		t.Error("expected an error for an empty document")
	}
}

func TestFlowchartSemantics(t *testing.T) {
	t.Parallel()
	got, err := svg.Transform(flowchartSVG, diagram.Meta{Title: "Flow", Description: "D"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := parse(t, got).Root()

	var nodeGroups, listContainers, hiddenMarkers int
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		for _, child := range e.ChildElements() {
			switch {
			case child.Tag == "g" && hasClass(child, "nodes"):
				if child.SelectAttrValue("role", "") == "list" {
					listContainers++
				}
			case child.Tag == "g" && hasClass(child, "node"):
				if child.SelectAttrValue("role", "") == "listitem" {
					nodeGroups++
				}
				checkNodeGroup(t, child)
			case child.Tag == "marker":
				if child.SelectAttrValue("aria-hidden", "") == "true" {
					hiddenMarkers++
				}
			case child.Tag == "g" && (hasClass(child, "edgePaths") || hasClass(child, "edgeLabels")):
				if child.SelectAttrValue("aria-hidden", "") != "true" {
					t.Errorf("edge group %q not hidden", child.SelectAttrValue("class", ""))
				}
			}
			walk(child)
		}
	}
	walk(root)

	if nodeGroups != 3 {
		t.Errorf("expected 3 listitem node groups, but got %d", nodeGroups)
	}
	if listContainers != 1 {
		t.Errorf("expected 1 list container, but got %d", listContainers)
	}
	if hiddenMarkers != 1 {
		t.Errorf("expected 1 hidden marker, but got %d", hiddenMarkers)
	}
}

func checkNodeGroup(t *testing.T, group *etree.Element) {
	t.Helper()
	titles := group.SelectElements("title")
	texts := group.SelectElements("text")
	if len(texts) > 0 {
		if len(titles) != 1 {
			t.Errorf("node group with text: expected exactly 1 title, but got %d", len(titles))
			return
		}
		if titles[0].Text() == "" {
			t.Error("node group title is empty")
		}
		if group.ChildElements()[0].Tag != "title" {
			t.Error("title is not the first child of its node group")
		}
		// Only the first text run stays visible to assistive technology.
		for i, text := range texts {
			hidden := text.SelectAttrValue("aria-hidden", "") == "true"
			if i == 0 && hidden {
				t.Error("first text run must stay visible")
			}
			if i > 0 && !hidden {
				t.Error("fragmented text run not hidden")
			}
		}
	}
	for _, shape := range []string{"rect", "polygon", "circle"} {
		for _, e := range group.SelectElements(shape) {
			if e.SelectAttrValue("aria-hidden", "") != "true" {
				t.Errorf("decorative %s not hidden", shape)
			}
		}
	}
}

func hasClass(e *etree.Element, token string) bool {
	for _, t := range strings.Fields(e.SelectAttrValue("class", "")) {
		if t == token {
			return true
		}
	}
	return false
}

func TestFlowchartNodeTitleConcatenation(t *testing.T) {
	t.Parallel()
	got, err := svg.Transform(flowchartSVG, diagram.Meta{Title: "Flow"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The fragmented label "Sta" + "rt" becomes one accessible name.
	if !strings.Contains(got, "<title>Start</title>") {
		t.Errorf("expected concatenated node title in %q", got)
	}
}

func TestFlowchartSemanticsIdempotentTitles(t *testing.T) {
	t.Parallel()
	m := diagram.Meta{Title: "Flow"}
	once, err := svg.Transform(flowchartSVG, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := svg.Transform(once, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(twice, "<title>Start</title>"); got != 1 {
		t.Errorf("expected exactly one node title after re-run, but got %d", got)
	}
}

func TestSteps(t *testing.T) {
	t.Parallel()
	exp := []string{"role", "ids", "remove-existing", "insert-new", "flowchart-semantics", "namespace"}
	got := svg.Steps()
	if len(got) != len(exp) {
		t.Fatalf("expected %v, but got %v", exp, got)
	}
	for i, name := range exp {
		if got[i] != name {
			t.Errorf("step %d: expected %q, but got %q", i, name, got[i])
		}
	}
}

func TestApplyMinimalRole(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		doc string
		exp string
	}{
		{"<svg viewBox=\"0 0 1 1\"><g/></svg>", "<svg role=\"img\" viewBox=\"0 0 1 1\"><g/></svg>"},
		{"<svg role=\"img\"><g/></svg>", "<svg role=\"img\"><g/></svg>"},
		{"no markup at all", "no markup at all"},
	}
	for i, tc := range testcases {
		if got := svg.ApplyMinimalRole(tc.doc); got != tc.exp {
			t.Errorf("%d: expected %q, but got %q", i, tc.exp, got)
		}
	}
}
