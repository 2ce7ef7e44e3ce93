//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"codeberg.org/t73fde/accviz/diagram"
	"codeberg.org/t73fde/accviz/pipeline"

	_ "codeberg.org/t73fde/accviz/encoder/htmlenc"
	_ "codeberg.org/t73fde/accviz/encoder/textenc"
	_ "codeberg.org/t73fde/accviz/parser/flowchart"
	_ "codeberg.org/t73fde/accviz/parser/generic"
)

type stubRenderer struct {
	doc   string
	err   error
	calls int
}

func (r *stubRenderer) Render(context.Context, string) (string, error) {
	r.calls++
	return r.doc, r.err
}

type stubEnhancer struct {
	text string
	err  error
}

func (e *stubEnhancer) Enhance(context.Context, string) (string, error) {
	return e.text, e.err
}

const flowSource = `---
title: ignored
---
flowchart TD
    A[Start] --> B[End]
`

const minimalSVG = `<svg xmlns="http://www.w3.org/2000/svg"><g></g></svg>`

func TestRunFull(t *testing.T) {
	t.Parallel()
	renderer := &stubRenderer{doc: minimalSVG}
	p := pipeline.Pipeline{Renderer: renderer, AutoAnnotate: true}
	result, err := p.Run(context.Background(), flowSource)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !result.SourceModified {
		t.Error("expected metadata synthesis to modify the source")
	}
	if !strings.Contains(result.Source, diagram.KeywordTitle) {
		t.Errorf("annotated source misses %q:\n%s", diagram.KeywordTitle, result.Source)
	}
	if result.Type != diagram.TypeFlowchart {
		t.Errorf("Type == %v, want flowchart", result.Type)
	}
	if !strings.Contains(result.NarrativeHTML, "Start") {
		t.Errorf("HTML narrative misses node text:\n%s", result.NarrativeHTML)
	}
	if !strings.Contains(result.NarrativeText, "Start") {
		t.Errorf("text narrative misses node text:\n%s", result.NarrativeText)
	}
	if !strings.Contains(result.SVG, `role="img"`) {
		t.Errorf("transformed SVG misses role attribute:\n%s", result.SVG)
	}
	if !strings.Contains(result.SVG, "aria-labelledby") {
		t.Errorf("transformed SVG misses aria-labelledby:\n%s", result.SVG)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
	if renderer.calls != 1 {
		t.Errorf("renderer called %d times, want 1", renderer.calls)
	}
}

func TestRunWithoutRenderer(t *testing.T) {
	t.Parallel()
	p := pipeline.Pipeline{}
	result, err := p.Run(context.Background(), flowSource)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.SVG != "" {
		t.Errorf("expected no SVG, got: %s", result.SVG)
	}
	if result.SourceModified {
		t.Error("source must stay untouched without AutoAnnotate")
	}
	if result.NarrativeHTML == "" || result.NarrativeText == "" {
		t.Error("narratives must always be produced")
	}
}

func TestRunRenderFailure(t *testing.T) {
	t.Parallel()
	renderer := &stubRenderer{err: errors.New("engine down")}
	p := pipeline.Pipeline{Renderer: renderer}
	result, err := p.Run(context.Background(), flowSource)
	if err == nil {
		t.Fatal("expected render error")
	}
	if result == nil {
		t.Fatal("result must be returned even on render failure")
	}
	if result.NarrativeHTML == "" {
		t.Error("narrative must survive a render failure")
	}
	if len(result.Warnings) != 1 {
		t.Errorf("Warnings == %v, want one entry", result.Warnings)
	}
}

func TestRunTransformFallback(t *testing.T) {
	t.Parallel()
	renderer := &stubRenderer{doc: `<svg xmlns="http://www.w3.org/2000/svg"><g></svg>`}
	p := pipeline.Pipeline{Renderer: renderer}
	result, err := p.Run(context.Background(), flowSource)
	if err != nil {
		t.Fatalf("transform failure must not fail the run: %v", err)
	}
	if !strings.Contains(result.SVG, `role="img"`) {
		t.Errorf("fallback SVG misses minimal role:\n%s", result.SVG)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("Warnings == %v, want one entry", result.Warnings)
	}
}

func TestRunEnhancer(t *testing.T) {
	t.Parallel()
	p := pipeline.Pipeline{Enhancer: &stubEnhancer{text: "<p>better</p>"}}
	result, err := p.Run(context.Background(), flowSource)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Enhanced != "<p>better</p>" {
		t.Errorf("Enhanced == %q, want improved narrative", result.Enhanced)
	}

	p = pipeline.Pipeline{Enhancer: &stubEnhancer{err: errors.New("quota")}}
	result, err = p.Run(context.Background(), flowSource)
	if err != nil {
		t.Fatalf("enhancer failure must not fail the run: %v", err)
	}
	if result.Enhanced != "" {
		t.Errorf("Enhanced == %q, want empty on failure", result.Enhanced)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("Warnings == %v, want one entry", result.Warnings)
	}
}
