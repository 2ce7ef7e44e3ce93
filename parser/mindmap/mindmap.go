//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package mindmap provides the structural parser for mindmap diagrams.
package mindmap

import (
	"regexp"
	"strings"

	"codeberg.org/t73fde/accviz/diagram"
	"codeberg.org/t73fde/accviz/model"
	"codeberg.org/t73fde/accviz/parser"
)

func init() {
	parser.Register(&parser.Info{
		Type:  diagram.TypeMindmap,
		Parse: parseMindmap,
	})
}

// indentUnit is the fixed width of one indentation level.
const indentUnit = 2

var reIcon = regexp.MustCompile(`::icon\([^)]*\)`)

// Shape wrappers around the node text, double delimiters before single
// ones. Stripping them changes the display text only, never the tree.
var shapeWrappers = []struct{ open, close string }{
	{"((", "))"},
	{"{{", "}}"},
	{"([", "])"},
	{"[[", "]]"},
	{"(", ")"},
	{"[", "]"},
	{"{", "}"},
}

func parseMindmap(src string) model.Structure {
	mm := &model.Mindmap{}
	type level struct {
		depth int
		node  *model.MindmapNode
	}
	var stack []level
	for _, line := range parser.RawLines(src) {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		depth := indentDepth(line)
		node := &model.MindmapNode{Text: displayText(text)}
		if node.Text == "" {
			continue
		}
		if mm.Root == nil {
			mm.Root = node
			stack = []level{{depth, node}}
			continue
		}
		for len(stack) > 1 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node
		parent.Children = append(parent.Children, node)
		stack = append(stack, level{depth, node})
	}
	return mm
}

// indentDepth measures the indentation in fixed-width units. A tab counts as
// one unit.
func indentDepth(line string) int {
	spaces := 0
	for _, ch := range line {
		switch ch {
		case ' ':
			spaces++
		case '\t':
			spaces += indentUnit
		default:
			return spaces / indentUnit
		}
	}
	return spaces / indentUnit
}

// displayText strips the icon suffix and one shape wrapper pair from the
// node text.
func displayText(text string) string {
	text = strings.TrimSpace(reIcon.ReplaceAllString(text, ""))
	for _, w := range shapeWrappers {
		// A leading identifier before the wrapper is allowed: "id((text))".
		open := strings.Index(text, w.open)
		if open < 0 || !strings.HasSuffix(text, w.close) {
			continue
		}
		inner := text[open+len(w.open) : len(text)-len(w.close)]
		return strings.TrimSpace(inner)
	}
	return text
}
