//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package flowchart provides the structural parser for flowchart diagrams.
package flowchart

import (
	"regexp"
	"strings"

	"codeberg.org/t73fde/accviz/diagram"
	"codeberg.org/t73fde/accviz/model"
	"codeberg.org/t73fde/accviz/parser"
)

func init() {
	parser.Register(&parser.Info{
		Type:  diagram.TypeFlowchart,
		Parse: parseFlowchart,
	})
}

// Structural keywords that must not be misread as nodes or edges.
var structuralKeywords = []string{
	"subgraph", "end", "direction", "classDef", "class",
}

// Node shapes, multi-character delimiters before single ones. Only the
// curly-brace form marks a question node.
var reNode = regexp.MustCompile(`([A-Za-z][\w-]*)` +
	`(?:` +
	`\(\(([^)]+)\)\)` + // ((text)): circle
	`|\(\[([^\]]+)\]\)` + // ([text]): stadium
	`|\[\[([^\]]+)\]\]` + // [[text]]: subroutine
	`|\[([^\]]+)\]` + // [text]: rectangle / process
	`|\{\{([^}]+)\}\}` + // {{text}}: hexagon
	`|\{([^}]+)\}` + // {text}: decision / question
	`|\(([^)]+)\)` + // (text): rounded
	`)`)

const questionGroup = 7 // submatch index of the curly-brace form

// Arrows: one or more dash/dot/equal runs ending in ">". "-->", "--->",
// "==>", and "-.->" all mean the same edge relation.
const arrow = `[-.=]+>`

// The labelled form has priority over the unlabelled one: when both match a
// line, the labelled match is authoritative. The label group is greedy, so a
// label containing "|" or even an arrow token stays intact. The from-id group
// is lazy: ids may contain "-", and a greedy match would swallow the first
// dash of an unspaced arrow ("A-->" must not read as id "A-").
var (
	reEdgeLabeled = regexp.MustCompile(`([A-Za-z][\w-]*?)\s*` + arrow + `\s*\|(.*)\|\s*([A-Za-z][\w-]*)`)
	reArrowSplit  = regexp.MustCompile(`\s*` + arrow + `\s*`)
	reEndpointID  = regexp.MustCompile(`([A-Za-z][\w-]*)\s*$`)
	reStartID     = regexp.MustCompile(`^([A-Za-z][\w-]*)`)
)

func parseFlowchart(src string) model.Structure {
	fc := model.NewFlowchart()
	for _, line := range parser.Lines(src) {
		if isStructural(line) {
			continue
		}
		parseNodes(fc, line)
		parseEdges(fc, line)
	}
	return fc
}

func isStructural(line string) bool {
	for _, kw := range structuralKeywords {
		if rest, ok := strings.CutPrefix(line, kw); ok {
			if rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == ';' {
				return true
			}
		}
	}
	return false
}

// parseNodes registers every shape-declared node of the line.
func parseNodes(fc *model.Flowchart, line string) {
	for _, m := range reNode.FindAllStringSubmatch(line, -1) {
		id := m[1]
		text, isQuestion := "", false
		for grp := 2; grp < len(m); grp++ {
			if m[grp] != "" {
				text = strings.TrimSpace(m[grp])
				isQuestion = grp == questionGroup
				break
			}
		}
		text = strings.Trim(text, `"`)
		fc.AddNode(id, model.FlowNode{Text: text, IsQuestion: isQuestion})
	}
}

// parseEdges registers every edge of the line. A line matching the labelled
// pattern contributes exactly that edge; otherwise the line is split at the
// arrow tokens, so that chains like "A-->B-->C" yield all their edges.
func parseEdges(fc *model.Flowchart, line string) {
	stripped := stripShapes(line)
	if m := reEdgeLabeled.FindStringSubmatch(stripped); m != nil {
		addEdge(fc, m[1], m[3], strings.TrimSpace(m[2]))
		return
	}
	segs := reArrowSplit.Split(stripped, -1)
	if len(segs) < 2 {
		return
	}
	for i := 0; i+1 < len(segs); i++ {
		from := reEndpointID.FindStringSubmatch(segs[i])
		to := reStartID.FindStringSubmatch(segs[i+1])
		if from == nil || to == nil {
			continue
		}
		addEdge(fc, from[1], to[1], "")
	}
}

func addEdge(fc *model.Flowchart, from, to, label string) {
	fc.EnsureNode(from)
	fc.EnsureNode(to)
	fc.Edges = append(fc.Edges, model.FlowEdge{From: from, To: to, Label: label})
}

// stripShapes reduces every node declaration of the line to its bare
// identifier, so that edge matching cannot trip over shape text.
func stripShapes(line string) string {
	return reNode.ReplaceAllString(line, "$1")
}
