//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package pipeline orchestrates a full accessibility run: annotate,
// classify, parse, narrate, enhance, render, transform. Every run produces
// a fresh Result; nothing is kept between runs.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/t73fde/accviz/diagram"
	"codeberg.org/t73fde/accviz/encoder"
	"codeberg.org/t73fde/accviz/enhancer"
	"codeberg.org/t73fde/accviz/logger"
	"codeberg.org/t73fde/accviz/model"
	"codeberg.org/t73fde/accviz/parser"
	"codeberg.org/t73fde/accviz/render"
	"codeberg.org/t73fde/accviz/svg"
)

// Pipeline configures one or more runs. Renderer and Enhancer may be nil;
// the corresponding stages are skipped.
type Pipeline struct {
	Renderer     render.Renderer
	Enhancer     enhancer.Enhancer
	AutoAnnotate bool
	Log          *logger.Logger
}

// Result holds everything one run produced. A Result is never blank: a run
// that hits an error still returns what was computed before it, together
// with warnings naming the degradation.
type Result struct {
	Source         string
	SourceModified bool
	Type           diagram.Type
	Meta           diagram.Meta
	Structure      model.Structure
	NarrativeHTML  string
	NarrativeText  string
	Enhanced       string
	SVG            string
	Warnings       []string
}

// Run executes the pipeline on the given diagram source. A render error is
// returned to the caller, but the Result still carries the narrative built
// before the render stage.
func (p *Pipeline) Run(ctx context.Context, src string) (*Result, error) {
	result := &Result{Source: src}
	if p.AutoAnnotate {
		result.Source, result.Meta, result.SourceModified = diagram.EnsureMeta(src)
		if result.SourceModified {
			p.Log.Debug().Msg("Metadata annotations inserted")
		}
	}

	d := parser.Parse(result.Source)
	result.Type = d.Type
	result.Meta = d.Meta
	result.Structure = d.Structure
	p.Log.Info().Str("type", d.Type.String()).Msg("Diagram parsed")

	result.NarrativeHTML = encode(encoder.EncodingHTML, d)
	result.NarrativeText = encode(encoder.EncodingText, d)

	if p.Enhancer != nil {
		enhanced, err := p.Enhancer.Enhance(ctx, result.NarrativeHTML)
		if err != nil {
			result.warn("enhancement failed: %v", err)
			p.Log.Warn().Err(err).Msg("Enhancement failed")
		} else {
			result.Enhanced = enhanced
		}
	}

	if p.Renderer == nil {
		return result, nil
	}
	doc, err := p.Renderer.Render(ctx, result.Source)
	if err != nil {
		result.warn("render failed: %v", err)
		p.Log.Error().Err(err).Msg("Render failed")
		return result, err
	}
	transformed, err := svg.Transform(doc, result.Meta)
	if err != nil {
		result.SVG = svg.ApplyMinimalRole(doc)
		result.warn("svg transform failed, minimal role applied: %v", err)
		p.Log.Warn().Err(err).Msg("SVG transform failed")
		return result, nil
	}
	result.SVG = transformed
	return result, nil
}

func encode(enc encoder.Encoding, d *model.Diagram) string {
	var sb strings.Builder
	if _, err := encoder.Create(enc).WriteDiagram(&sb, d); err != nil {
		return ""
	}
	return sb.String()
}

func (r *Result) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
