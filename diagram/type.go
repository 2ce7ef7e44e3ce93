//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package diagram provides the diagram type vocabulary, the type classifier,
// and the accessibility metadata handling.
package diagram

import (
	"strings"

	"codeberg.org/t73fde/accviz/input"
)

// Type identifies one of the supported diagram dialects.
type Type uint8

// Constants for Type.
const (
	TypeUnknown Type = iota
	TypeFlowchart
	TypePie
	TypeClassDiagram
	TypeGantt
	TypeJourney
	TypeMindmap
	TypeTimeline
	TypeXYChart
	TypeSequence
	TypeState
	TypeER
	TypeGitGraph
	TypeC4
	TypeQuadrant
	TypeRequirement
	TypeZenUML
	TypeSankey
	TypeBlock
	TypePacket
	TypeKanban
	TypeArchitecture
	TypeRadar
	TypeTreemap
)

var typeName = map[Type]string{
	TypeUnknown:      "unknown",
	TypeFlowchart:    "flowchart",
	TypePie:          "pie",
	TypeClassDiagram: "classDiagram",
	TypeGantt:        "gantt",
	TypeJourney:      "journey",
	TypeMindmap:      "mindmap",
	TypeTimeline:     "timeline",
	TypeXYChart:      "xychart",
	TypeSequence:     "sequenceDiagram",
	TypeState:        "stateDiagram",
	TypeER:           "erDiagram",
	TypeGitGraph:     "gitGraph",
	TypeC4:           "c4",
	TypeQuadrant:     "quadrantChart",
	TypeRequirement:  "requirement",
	TypeZenUML:       "zenuml",
	TypeSankey:       "sankey",
	TypeBlock:        "block",
	TypePacket:       "packet",
	TypeKanban:       "kanban",
	TypeArchitecture: "architecture",
	TypeRadar:        "radar",
	TypeTreemap:      "treemap",
}

func (t Type) String() string {
	if name, ok := typeName[t]; ok {
		return name
	}
	return "unknown"
}

// typePrefixes maps the leading declaration keyword to a diagram type. The
// order matters: the first matching prefix wins, so longer keywords that
// share a prefix with shorter ones must come first.
var typePrefixes = []struct {
	prefix string
	t      Type
}{
	{"flowchart", TypeFlowchart},
	{"graph", TypeFlowchart},
	{"pie", TypePie},
	{"classDiagram", TypeClassDiagram},
	{"gantt", TypeGantt},
	{"journey", TypeJourney},
	{"mindmap", TypeMindmap},
	{"timeline", TypeTimeline},
	{"xychart", TypeXYChart},
	{"sequenceDiagram", TypeSequence},
	{"stateDiagram", TypeState},
	{"erDiagram", TypeER},
	{"gitGraph", TypeGitGraph},
	{"C4Context", TypeC4},
	{"C4Container", TypeC4},
	{"C4Component", TypeC4},
	{"C4Dynamic", TypeC4},
	{"C4Deployment", TypeC4},
	{"quadrantChart", TypeQuadrant},
	{"requirementDiagram", TypeRequirement},
	{"requirement", TypeRequirement},
	{"zenuml", TypeZenUML},
	{"sankey", TypeSankey},
	{"block", TypeBlock},
	{"packet", TypePacket},
	{"kanban", TypeKanban},
	{"architecture", TypeArchitecture},
	{"radar", TypeRadar},
	{"treemap", TypeTreemap},
}

// Classify determines the diagram type from the first significant line of
// the source. It strips frontmatter itself, consults no line after the first
// one, and maps everything it does not recognize to TypeUnknown.
func Classify(src string) Type {
	line := input.FirstContentLine(src)
	for _, tp := range typePrefixes {
		if strings.HasPrefix(line, tp.prefix) {
			return tp.t
		}
	}
	return TypeUnknown
}
