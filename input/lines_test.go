//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package input_test provides some unit-tests for reading data.
package input_test

import (
	"strings"
	"testing"

	"codeberg.org/t73fde/accviz/input"
)

func TestLines(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src string
		exp []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb\rc\n", []string{"a", "b", "c"}},
		{"\n\n", []string{"", ""}},
	}
	for i, tc := range testcases {
		got := input.Lines(tc.src)
		if len(got) != len(tc.exp) {
			t.Errorf("%d: Lines(%q) == %v, but got %v", i, tc.src, tc.exp, got)
			continue
		}
		for j, line := range got {
			if line != tc.exp[j] {
				t.Errorf("%d: line %d: expected %q, but got %q", i, j, tc.exp[j], line)
			}
		}
	}
}

func TestStripFrontmatter(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src string
		exp string
	}{
		{"", ""},
		{"flowchart TD\nA-->B", "flowchart TD\nA-->B"},
		{"---\nconfig:\n  theme: dark\n---\n\npie\n\"Dogs\":1", "\npie\n\"Dogs\":1"},
		{"---\ntheme: x\n---\ngantt", "gantt"},
		{"---\nnever closed\ngantt", "---\nnever closed\ngantt"},
		{"  ---  \na: b\n ---\npie", "pie"},
	}
	for i, tc := range testcases {
		got := input.StripFrontmatter(tc.src)
		if got != tc.exp {
			t.Errorf("%d: StripFrontmatter(%q) == %q, but got %q", i, tc.src, tc.exp, got)
		}
		// Stripping must be idempotent.
		if again := input.StripFrontmatter(got); again != got {
			t.Errorf("%d: not idempotent: %q != %q", i, again, got)
		}
	}
}

func TestFirstContentLine(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src string
		exp string
	}{
		{"", ""},
		{"\n  \n", ""},
		{"flowchart TD\nA-->B", "flowchart TD"},
		{"---\ntheme: x\n---\n\n  pie title Pets\n", "pie title Pets"},
		{"\t\n\t  gantt  \nx", "gantt"},
	}
	for i, tc := range testcases {
		if got := input.FirstContentLine(tc.src); got != tc.exp {
			t.Errorf("%d: FirstContentLine(%q) == %q, but got %q", i, tc.src, tc.exp, got)
		}
	}
}

func TestEatEOL(t *testing.T) {
	t.Parallel()
	inp := input.NewInput(nil)
	inp.EatEOL()
	if inp.Ch != input.EOS {
		t.Errorf("No EOS found: %q", inp.Ch)
	}
	if inp.Pos != 0 {
		t.Errorf("Pos != 0: %d", inp.Pos)
	}

	inp = input.NewInput([]byte("ABC"))
	if inp.Ch != 'A' {
		t.Errorf("First ch != 'A', got %q", inp.Ch)
	}
	inp.EatEOL()
	if inp.Ch != 'A' {
		t.Errorf("First ch != 'A', got %q", inp.Ch)
	}
}

func TestAccept(t *testing.T) {
	t.Parallel()
	inp := input.NewInput([]byte("flowchart TD"))
	if !inp.Accept("flowchart") {
		t.Error("Accept(\"flowchart\") failed")
	}
	if inp.Ch != ' ' {
		t.Errorf("Ch != ' ', got %q", inp.Ch)
	}
	if inp.Accept("XX") {
		t.Error("Accept(\"XX\") should fail")
	}
	inp.SkipSpace()
	if !strings.HasPrefix(string(inp.Src[inp.Pos:]), "TD") {
		t.Errorf("unexpected rest: %q", string(inp.Src[inp.Pos:]))
	}
}
