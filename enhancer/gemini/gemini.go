//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package gemini enhances a narrative through the Gemini API. The model
// answers in Markdown, which is converted to HTML before it is returned.
package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"google.golang.org/genai"

	"codeberg.org/t73fde/accviz/logger"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

const instruction = `You improve textual descriptions of diagrams for blind and
low-vision readers. You receive a mechanical description of a diagram. Rewrite
it as clear, flowing prose that conveys the same structure and all the same
facts. Do not invent nodes, connections, or values that are not present. Do not
mention that you are rewriting anything. Answer in Markdown.`

// Enhancer sends the narrative to Gemini and converts the Markdown reply
// to HTML.
type Enhancer struct {
	client *genai.Client
	model  string
	md     goldmark.Markdown
	log    *logger.Logger
}

// New creates an enhancer that authenticates with the given API key. An empty
// model name selects DefaultModel.
func New(ctx context.Context, apiKey, model string, log *logger.Logger) (*Enhancer, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: no API key")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Enhancer{
		client: client,
		model:  model,
		md:     goldmark.New(),
		log:    log,
	}, nil
}

// Enhance asks the model for an improved description. The Markdown answer is
// converted to HTML; raw HTML inside the answer stays escaped.
func (e *Enhancer) Enhance(ctx context.Context, narrative string) (string, error) {
	e.log.Debug().Str("model", e.model).Msg("Enhance narrative")
	resp, err := e.client.Models.GenerateContent(
		ctx, e.model, genai.Text(instruction+"\n\n"+narrative), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}
	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return "", errors.New("gemini: empty answer")
	}
	var buf bytes.Buffer
	if err = e.md.Convert([]byte(answer), &buf); err != nil {
		return "", fmt.Errorf("gemini: convert answer: %w", err)
	}
	return buf.String(), nil
}
