//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package render provides the client to the external rendering engine that
// converts diagram source text into vector markup.
package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"codeberg.org/t73fde/accviz/logger"
)

// Renderer produces vector markup for a diagram source. The source is handed
// over with its frontmatter intact, the engine handles its own frontmatter
// semantics.
type Renderer interface {
	Render(ctx context.Context, source string) (string, error)
}

// Client is a Renderer that talks to a Kroki-compatible HTTP endpoint.
type Client struct {
	baseURL string
	hc      *http.Client
	cache   *lru.Cache[string, string]
	log     *logger.Logger

	// Render failures can be transient engine-initialization races. A small
	// fixed number of attempts absorbs them; anything more is caller policy.
	maxAttempts int
	retryDelay  time.Duration
}

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = 250 * time.Millisecond
	cacheSize          = 64
)

// NewClient creates a client for the given engine base URL. The logger may
// be nil.
func NewClient(baseURL string, log *logger.Logger) *Client {
	cache, _ := lru.New[string, string](cacheSize)
	return &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		hc:          &http.Client{Timeout: 30 * time.Second},
		cache:       cache,
		log:         log,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
	}
}

// Render converts the diagram source into vector markup. Responses are
// cached by source text, non-2xx responses carry the engine's message
// verbatim.
func (c *Client) Render(ctx context.Context, source string) (string, error) {
	if doc, found := c.cache.Get(source); found {
		c.log.Debug().Int("len", int64(len(doc))).Msg("render cache hit")
		return doc, nil
	}
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}
		doc, err := c.renderOnce(ctx, source)
		if err == nil {
			c.cache.Add(source, doc)
			return doc, nil
		}
		lastErr = err
		c.log.Warn().Err(err).Int("attempt", int64(attempt)).Msg("render failed")
	}
	return "", lastErr
}

func (c *Client) renderOnce(ctx context.Context, source string) (string, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/mermaid/svg", strings.NewReader(source))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "text/plain")
	resp, err := c.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The engine's message is the syntax error signal for the user.
		return "", fmt.Errorf("render engine: %s", strings.TrimSpace(string(body)))
	}
	return string(body), nil
}
