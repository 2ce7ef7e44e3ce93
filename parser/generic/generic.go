//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package generic provides the fallback parser for every dialect without a
// dedicated structural parser. It only counts structural features and can
// never fail.
package generic

import (
	"regexp"
	"strings"

	"codeberg.org/t73fde/accviz/diagram"
	"codeberg.org/t73fde/accviz/model"
	"codeberg.org/t73fde/accviz/parser"
)

func init() {
	parser.Register(&parser.Info{
		Type:  diagram.TypeUnknown,
		Parse: ParseCounts,
	})
}

var (
	reElement = regexp.MustCompile(`[A-Za-z][\w-]*[\[({]`)
	reArrow   = regexp.MustCompile(`[-=.]+>`)
	reLabel   = regexp.MustCompile(`"[^"]*"`)
)

// ParseCounts builds the counting model for any diagram source. It is also
// used directly by callers that want counts for a classified dialect.
func ParseCounts(src string) model.Structure {
	g := &model.Generic{Type: diagram.Classify(src)}
	for _, line := range parser.Lines(src) {
		g.Lines++
		if reElement.MatchString(line) {
			g.Elements++
		}
		if reArrow.MatchString(line) {
			g.Connections++
		}
		if strings.HasPrefix(line, "section") || strings.HasPrefix(line, "subgraph") {
			g.Sections++
		}
		g.Labels += len(reLabel.FindAllString(line, -1))
	}
	return g
}
