//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package enhancer provides the optional narrative enhancement capability.
// The base narrative is always complete and correct without it; enhancement
// is best effort only.
package enhancer

import "context"

// Enhancer possibly improves a narrative. Implementations must return either
// an improved narrative or an error, never a degraded one.
type Enhancer interface {
	Enhance(ctx context.Context, narrative string) (string, error)
}

// Noop is the enhancer that returns the narrative unchanged.
type Noop struct{}

// Enhance returns the given narrative.
func (Noop) Enhance(_ context.Context, narrative string) (string, error) {
	return narrative, nil
}
