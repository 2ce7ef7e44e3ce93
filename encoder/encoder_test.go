//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package encoder_test

import (
	"strings"
	"testing"

	"codeberg.org/t73fde/accviz/encoder"
	"codeberg.org/t73fde/accviz/parser"

	_ "codeberg.org/t73fde/accviz/encoder/htmlenc"   // Allow to use HTML encoder.
	_ "codeberg.org/t73fde/accviz/encoder/nativeenc" // Allow to use native encoder.
	_ "codeberg.org/t73fde/accviz/encoder/textenc"   // Allow to use text encoder.

	_ "codeberg.org/t73fde/accviz/parser/classdiag" // Allow to use class diagram parser.
	_ "codeberg.org/t73fde/accviz/parser/flowchart" // Allow to use flowchart parser.
	_ "codeberg.org/t73fde/accviz/parser/gantt"     // Allow to use gantt parser.
	_ "codeberg.org/t73fde/accviz/parser/generic"   // Allow to use generic fallback parser.
	_ "codeberg.org/t73fde/accviz/parser/journey"   // Allow to use journey parser.
	_ "codeberg.org/t73fde/accviz/parser/mindmap"   // Allow to use mindmap parser.
	_ "codeberg.org/t73fde/accviz/parser/pie"       // Allow to use pie parser.
	_ "codeberg.org/t73fde/accviz/parser/timeline"  // Allow to use timeline parser.
	_ "codeberg.org/t73fde/accviz/parser/xychart"   // Allow to use xychart parser.
)

func TestEncodingRegistry(t *testing.T) {
	t.Parallel()
	if got := len(encoder.GetEncodings()); got != 3 {
		t.Errorf("expected 3 registered encodings, but got %d", got)
	}
	if got := encoder.GetDefaultEncoding(); got != encoder.EncodingHTML {
		t.Errorf("expected default encoding html, but got %v", got)
	}
	for _, name := range []string{"html", "text", "native"} {
		enc := encoder.ParseEncoding(name)
		if enc == encoder.EncodingUnknown {
			t.Errorf("encoding %q not parseable", name)
			continue
		}
		if got := enc.String(); got != name {
			t.Errorf("expected %q, but got %q", name, got)
		}
		if encoder.Create(enc) == nil {
			t.Errorf("no encoder for %q", name)
		}
	}
	if got := encoder.ParseEncoding("no-such-encoding"); got != encoder.EncodingUnknown {
		t.Errorf("expected unknown encoding, but got %v", got)
	}
}

func encode(t *testing.T, enc encoder.Encoding, src string) string {
	t.Helper()
	var sb strings.Builder
	if _, err := encoder.Create(enc).WriteDiagram(&sb, parser.Parse(src)); err != nil {
		t.Fatalf("encoding failed: %v", err)
	}
	return sb.String()
}

func TestMinimalFlowchartNarrative(t *testing.T) {
	t.Parallel()
	src := "flowchart TD\nA[Start]-->B[End]\n%%accTitle T\n%%accDescr D"
	for _, enc := range []encoder.Encoding{encoder.EncodingHTML, encoder.EncodingText} {
		got := encode(t, enc, src)
		for _, exp := range []string{"Start at: ", "Start", "End", "2 nodes, 1 connection, 0 decision points"} {
			if !strings.Contains(got, exp) {
				t.Errorf("%v: expected %q in %q", enc, exp, got)
			}
		}
	}
}

func TestFlowchartDecisionNarrative(t *testing.T) {
	t.Parallel()
	got := encode(t, encoder.EncodingText, "flowchart TD\nQ{Ready?}-->|yes|B[Go]\nQ-->|no|C[Wait]\nB-->D[Done]\n")
	for _, exp := range []string{
		"If Ready? is yes, then → Go",
		"If Ready? is no, then → Wait",
		"Go → Done",
		"4 nodes, 3 connections, 1 decision point",
	} {
		if !strings.Contains(got, exp) {
			t.Errorf("expected %q in %q", exp, got)
		}
	}
}

func TestNarrativeEscaping(t *testing.T) {
	t.Parallel()
	src := "pie\n%%accTitle: <script>alert(1)</script>\n%%accDescr: a & b\n\"<b>bold</b>\": 3\n"
	got := encode(t, encoder.EncodingHTML, src)
	if strings.Contains(got, "<script>") || strings.Contains(got, "<b>bold</b>") {
		t.Errorf("raw user markup survived: %q", got)
	}
	for _, exp := range []string{"&lt;script&gt;", "&lt;b&gt;bold&lt;/b&gt;", "a &amp; b"} {
		if !strings.Contains(got, exp) {
			t.Errorf("expected %q in %q", exp, got)
		}
	}
}

func TestPieNarrative(t *testing.T) {
	t.Parallel()
	got := encode(t, encoder.EncodingText, "pie\n\"A\": 1\n\"B\": 1\n\"C\": 2\n")
	expOrder := []string{"C: 2 (50.0%)", "A: 1 (25.0%)", "B: 1 (25.0%)", "Total: 4"}
	pos := -1
	for _, exp := range expOrder {
		idx := strings.Index(got, exp)
		if idx < 0 {
			t.Errorf("expected %q in %q", exp, got)
			continue
		}
		if idx < pos {
			t.Errorf("%q appears out of order in %q", exp, got)
		}
		pos = idx
	}
}

func TestEmptyNarratives(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src string
		exp string
	}{
		{"flowchart TD", encoder.MsgNoFlowchart},
		{"pie", encoder.MsgNoPie},
		{"classDiagram", encoder.MsgNoClasses},
		{"gantt", encoder.MsgNoGantt},
		{"journey", encoder.MsgNoJourney},
		{"mindmap", encoder.MsgEmptyMindmap},
		{"timeline", encoder.MsgEmptyTimeline},
		{"xychart-beta", encoder.MsgNoChartData},
	}
	for i, tc := range testcases {
		got := encode(t, encoder.EncodingHTML, tc.src)
		if !strings.Contains(got, tc.exp) {
			t.Errorf("%d: expected %q in %q", i, tc.exp, got)
		}
	}
}

func TestGenericNarrative(t *testing.T) {
	t.Parallel()
	got := encode(t, encoder.EncodingHTML, "sequenceDiagram\nAlice->>Bob: Hi")
	for _, exp := range []string{"sequenceDiagram", "1 line", encoder.MsgNoDetail, encoder.MsgStillAccessible} {
		if !strings.Contains(got, exp) {
			t.Errorf("expected %q in %q", exp, got)
		}
	}
}

func TestFrontmatterIgnored(t *testing.T) {
	t.Parallel()
	got := encode(t, encoder.EncodingHTML, "---\nconfig:\n  theme: dark\n---\n\npie\n\"Dogs\":1")
	for _, forbidden := range []string{"config", "theme"} {
		if strings.Contains(got, forbidden) {
			t.Errorf("narrative leaks frontmatter word %q: %q", forbidden, got)
		}
	}
	if !strings.Contains(got, "Dogs") {
		t.Errorf("expected segment narration in %q", got)
	}
}

func TestNativeEncoding(t *testing.T) {
	t.Parallel()
	got := encode(t, encoder.EncodingNative, "flowchart TD\nA[Start]-->B[End]")
	for _, exp := range []string{"[Diagram [Type flowchart]", "[Flowchart [Nodes", `[A "Start"]`, "[Edges [A B]]"} {
		if !strings.Contains(got, exp) {
			t.Errorf("expected %q in %q", exp, got)
		}
	}
}
