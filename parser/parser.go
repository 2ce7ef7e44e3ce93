//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package parser provides a generic interface to a range of different
// diagram parsers.
package parser

import (
	"fmt"
	"strings"

	"codeberg.org/t73fde/accviz/diagram"
	"codeberg.org/t73fde/accviz/input"
	"codeberg.org/t73fde/accviz/model"
	"codeberg.org/t73fde/accviz/strfun"
)

// Info describes a single parser.
//
// Parse must be total: it gets the full diagram source, skips what it does
// not recognize, and always returns a valid, possibly empty, structural
// model. It must never fail.
type Info struct {
	Type  diagram.Type
	Parse func(src string) model.Structure
}

var registry = map[diagram.Type]*Info{}

// Register the parser (info) for later retrieval.
func Register(pi *Info) {
	if _, ok := registry[pi.Type]; ok {
		panic(fmt.Sprintf("Parser %q already registered", pi.Type))
	}
	registry[pi.Type] = pi
}

// GetTypes returns all types with a registered parser.
func GetTypes() []diagram.Type {
	result := make([]diagram.Type, 0, len(registry))
	for t := range registry {
		result = append(result, t)
	}
	return result
}

// Get the parser (info) by type. If no dedicated parser exists for the
// type, the generic fallback parser is returned.
func Get(t diagram.Type) *Info {
	if pi := registry[t]; pi != nil {
		return pi
	}
	if pi := registry[diagram.TypeUnknown]; pi != nil {
		return pi
	}
	panic(fmt.Sprintf("No parser for %q found", t))
}

// IsDedicated returns whether the given type has its own parser, instead of
// being handled by the generic fallback.
func IsDedicated(t diagram.Type) bool {
	_, ok := registry[t]
	return ok && t != diagram.TypeUnknown
}

// Parse classifies the source, extracts its metadata, runs the matching
// structural parser, and bundles everything into one diagram model.
func Parse(src string) *model.Diagram {
	t := diagram.Classify(src)
	return &model.Diagram{
		Type:      t,
		Meta:      diagram.ExtractMeta(src),
		Structure: ParseStructure(src, t),
	}
}

// ParseStructure runs the structural parser for the given type over the
// source.
func ParseStructure(src string, t diagram.Type) model.Structure {
	return Get(t).Parse(src)
}

// Lines returns the significant lines of the source: frontmatter removed,
// blank lines, comment lines, and the declaration line itself dropped, the
// remaining lines trimmed.
func Lines(src string) []string {
	var result []string
	first := true
	for _, line := range input.Lines(input.StripFrontmatter(src)) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "%%") {
			continue
		}
		if first {
			// The declaration line carries no structure.
			first = false
			continue
		}
		result = append(result, trimmed)
	}
	return result
}

// RawLines works like Lines, but keeps the indentation of each line. Needed
// by dialects where indentation is structure. Trailing space is still noise
// and removed.
func RawLines(src string) []string {
	var result []string
	first := true
	for _, line := range input.Lines(input.StripFrontmatter(src)) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "%%") {
			continue
		}
		if first {
			first = false
			continue
		}
		result = append(result, strfun.TrimSpaceRight(line))
	}
	return result
}
