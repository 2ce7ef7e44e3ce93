//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package diagram_test

import (
	"testing"

	"codeberg.org/t73fde/accviz/diagram"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src string
		exp diagram.Type
	}{
		{"", diagram.TypeUnknown},
		{"\n\n", diagram.TypeUnknown},
		{"something else", diagram.TypeUnknown},
		{"flowchart TD\nA-->B", diagram.TypeFlowchart},
		{"flowchart LR", diagram.TypeFlowchart},
		{"graph TD", diagram.TypeFlowchart},
		{"pie title Pets", diagram.TypePie},
		{"classDiagram", diagram.TypeClassDiagram},
		{"gantt", diagram.TypeGantt},
		{"journey", diagram.TypeJourney},
		{"mindmap", diagram.TypeMindmap},
		{"timeline", diagram.TypeTimeline},
		{"xychart-beta", diagram.TypeXYChart},
		{"sequenceDiagram\nAlice->>Bob: Hi", diagram.TypeSequence},
		{"stateDiagram-v2", diagram.TypeState},
		{"erDiagram", diagram.TypeER},
		{"gitGraph", diagram.TypeGitGraph},
		{"C4Context", diagram.TypeC4},
		{"C4Container", diagram.TypeC4},
		{"C4Component", diagram.TypeC4},
		{"quadrantChart", diagram.TypeQuadrant},
		{"requirementDiagram", diagram.TypeRequirement},
		{"zenuml", diagram.TypeZenUML},
		{"sankey-beta", diagram.TypeSankey},
		{"block-beta", diagram.TypeBlock},
		{"packet-beta", diagram.TypePacket},
		{"kanban", diagram.TypeKanban},
		{"architecture-beta", diagram.TypeArchitecture},
		{"radar-beta", diagram.TypeRadar},
		{"treemap-beta", diagram.TypeTreemap},
		{"---\nconfig:\n  theme: dark\n---\n\npie\n\"Dogs\":1", diagram.TypePie},
		{"  \n  flowchart TD", diagram.TypeFlowchart},
	}
	for i, tc := range testcases {
		if got := diagram.Classify(tc.src); got != tc.exp {
			t.Errorf("%d: Classify(%q) == %v, but got %v", i, tc.src, tc.exp, got)
		}
	}
}

func TestTypeString(t *testing.T) {
	t.Parallel()
	if got := diagram.TypeFlowchart.String(); got != "flowchart" {
		t.Errorf("expected %q, but got %q", "flowchart", got)
	}
	if got := diagram.TypeUnknown.String(); got != "unknown" {
		t.Errorf("expected %q, but got %q", "unknown", got)
	}
	if got := diagram.Type(200).String(); got != "unknown" {
		t.Errorf("expected %q, but got %q", "unknown", got)
	}
}
