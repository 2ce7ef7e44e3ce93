//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package diagram

import (
	"strings"

	"codeberg.org/t73fde/accviz/input"
)

// Meta contains the accessibility metadata of a diagram. An empty string
// denotes an absent value.
type Meta struct {
	Title       string
	Description string
}

// HasTitle returns true, if a title was given.
func (m *Meta) HasTitle() bool { return m.Title != "" }

// HasDescription returns true, if a description was given.
func (m *Meta) HasDescription() bool { return m.Description != "" }

// Keywords of the annotation lines. Both are written behind a "%%" comment
// marker, with an optional colon before the free text. This is a wire
// contract shared with other tooling and must round-trip exactly.
const (
	KeywordTitle       = "accTitle"
	KeywordDescription = "accDescr"
)

// Default values synthesized by EnsureMeta.
const (
	DefaultTitle       = "Untitled diagram"
	DefaultDescription = "No description provided."
)

// ExtractMeta scans the whole source, including any frontmatter, for the two
// annotation lines and returns their trimmed values. The first non-empty
// occurrence of each annotation wins.
func ExtractMeta(src string) Meta {
	var m Meta
	for _, line := range input.Lines(src) {
		trimmed := strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(trimmed, "%%")
		if !ok {
			continue
		}
		rest = strings.TrimSpace(rest)
		if val, found := cutKeyword(rest, KeywordTitle); found && m.Title == "" {
			m.Title = val
		} else if val, found = cutKeyword(rest, KeywordDescription); found && m.Description == "" {
			m.Description = val
		}
	}
	return m
}

// cutKeyword matches "keyword[:] free text" and returns the trimmed text.
func cutKeyword(s, keyword string) (string, bool) {
	rest, ok := strings.CutPrefix(s, keyword)
	if !ok {
		return "", false
	}
	if rest != "" && rest[0] != ':' && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	rest = strings.TrimPrefix(rest, ":")
	return strings.TrimSpace(rest), true
}

// annotationLine renders the canonical form of an annotation line, the one
// that ExtractMeta reads back bit-exactly.
func annotationLine(keyword, value string) string {
	return "%%" + keyword + ": " + value
}

// EnsureMeta extracts the metadata of the given source. For each missing
// field it appends a synthesized default annotation line at the end of the
// source, never mid-document. It returns the possibly modified source, the
// resulting metadata, and whether any synthesis occurred.
func EnsureMeta(src string) (string, Meta, bool) {
	m := ExtractMeta(src)
	if m.HasTitle() && m.HasDescription() {
		return src, m, false
	}
	var sb strings.Builder
	sb.WriteString(src)
	if src != "" && !strings.HasSuffix(src, "\n") {
		sb.WriteByte('\n')
	}
	if !m.HasTitle() {
		m.Title = DefaultTitle
		sb.WriteString(annotationLine(KeywordTitle, m.Title))
		sb.WriteByte('\n')
	}
	if !m.HasDescription() {
		m.Description = DefaultDescription
		sb.WriteString(annotationLine(KeywordDescription, m.Description))
		sb.WriteByte('\n')
	}
	return sb.String(), m, true
}
