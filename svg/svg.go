//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package svg transforms rendered vector markup into an accessible vector
// document: image role, title/description nodes, labelling attribute, and
// list semantics for flowchart node groups.
package svg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"codeberg.org/t73fde/accviz/diagram"
	"codeberg.org/t73fde/accviz/strfun"
)

// ErrNoRoot signals a vector document without a root element.
var ErrNoRoot = errors.New("no root element in vector document")

// svgNamespace is required for the document to be valid standalone.
const svgNamespace = "http://www.w3.org/2000/svg"

// transformer carries the document state through the step pipeline.
type transformer struct {
	doc     *etree.Document
	root    *etree.Element
	meta    diagram.Meta
	titleID string
	descID  string
}

// step is one named tree-rewrite operation. The order of the steps is the
// contract of this package.
type step struct {
	name string
	fn   func(*transformer)
}

var steps = []step{
	{"role", (*transformer).applyRole},
	{"ids", (*transformer).generateIDs},
	{"remove-existing", (*transformer).removeExisting},
	{"insert-new", (*transformer).insertNew},
	{"flowchart-semantics", (*transformer).applyFlowchartSemantics},
	{"namespace", (*transformer).applyNamespace},
}

// Steps returns the names of the transformation steps in execution order.
func Steps() []string {
	result := make([]string, len(steps))
	for i, s := range steps {
		result[i] = s.name
	}
	return result
}

// Transform parses the vector markup, runs the step pipeline with the given
// metadata, and serializes the result. A parse failure or a missing root
// element is a hard error. Metadata injection is idempotent: transforming a
// prior output replaces title and description instead of duplicating them.
func Transform(doc string, m diagram.Meta) (string, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromString(doc); err != nil {
		return "", fmt.Errorf("parse vector document: %w", err)
	}
	root := tree.Root()
	if root == nil {
		return "", ErrNoRoot
	}
	t := &transformer{doc: tree, root: root, meta: m}
	for _, s := range steps {
		s.fn(t)
	}
	result, err := tree.WriteToString()
	if err != nil {
		return "", fmt.Errorf("serialize vector document: %w", err)
	}
	return result, nil
}

func (t *transformer) applyRole() {
	t.root.CreateAttr("role", "img")
}

// generateIDs creates collision-resistant identifiers for the title and
// description nodes. A fresh random suffix per call keeps repeated runs
// within a session unique.
func (t *transformer) generateIDs() {
	if t.meta.HasTitle() {
		t.titleID = makeID("title", t.meta.Title)
	}
	if t.meta.HasDescription() {
		t.descID = makeID("desc", t.meta.Description)
	}
}

func makeID(kind, text string) string {
	suffix := uuid.NewString()
	if slug := strfun.Slugify(text); slug != "" {
		if len(slug) > 24 {
			slug = slug[:24]
		}
		return "accviz-" + kind + "-" + slug + "-" + suffix
	}
	return "accviz-" + kind + "-" + suffix
}

// removeExisting drops all title/description nodes directly below the root,
// so that re-running the transformation cannot duplicate them.
func (t *transformer) removeExisting() {
	for _, child := range t.root.ChildElements() {
		if child.Tag == "title" || child.Tag == "desc" {
			t.root.RemoveChild(child)
		}
	}
}

// insertNew inserts the title node as first child and the description node
// immediately after it, and points the labelling attribute at them, title
// first.
func (t *transformer) insertNew() {
	var labels []string
	pos := 0
	if t.meta.HasTitle() {
		title := etree.NewElement("title")
		title.CreateAttr("id", t.titleID)
		title.SetText(t.meta.Title)
		t.root.InsertChildAt(pos, title)
		labels = append(labels, t.titleID)
		pos++
	}
	if t.meta.HasDescription() {
		desc := etree.NewElement("desc")
		desc.CreateAttr("id", t.descID)
		desc.SetText(t.meta.Description)
		t.root.InsertChildAt(pos, desc)
		labels = append(labels, t.descID)
	}
	if len(labels) > 0 {
		t.root.CreateAttr("aria-labelledby", strings.Join(labels, " "))
	}
}

func (t *transformer) applyNamespace() {
	if t.root.SelectAttr("xmlns") == nil {
		t.root.CreateAttr("xmlns", svgNamespace)
	}
}

// walkElements visits all element descendants, parents before children.
func walkElements(e *etree.Element, visit func(*etree.Element)) {
	for _, child := range e.ChildElements() {
		visit(child)
		walkElements(child, visit)
	}
}

// hasClassToken checks the class attribute for the given token.
func hasClassToken(e *etree.Element, token string) bool {
	for _, t := range strings.Fields(e.SelectAttrValue("class", "")) {
		if t == token {
			return true
		}
	}
	return false
}

// textContent concatenates all character data of the element's subtree.
func textContent(e *etree.Element) string {
	var sb strings.Builder
	var walk func(*etree.Element)
	walk = func(el *etree.Element) {
		for _, tok := range el.Child {
			switch c := tok.(type) {
			case *etree.CharData:
				sb.WriteString(c.Data)
			case *etree.Element:
				walk(c)
			}
		}
	}
	walk(e)
	return strings.TrimSpace(sb.String())
}

// ApplyMinimalRole is the degraded fallback when Transform fails: it injects
// the image role on a string level, without parsing the document. Callers
// display its result together with a warning, never a blank output.
func ApplyMinimalRole(doc string) string {
	idx := strings.Index(doc, "<svg")
	if idx < 0 {
		return doc
	}
	end := strings.Index(doc[idx:], ">")
	if end < 0 {
		return doc
	}
	if strings.Contains(doc[idx:idx+end], "role=") {
		return doc
	}
	return doc[:idx+4] + ` role="img"` + doc[idx+4:]
}
