//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package input

import "strings"

// Lines splits the source into its lines. End-of-line handling follows
// EatEOL: "\r", "\n", and "\r\n" all terminate a line.
func Lines(src string) []string {
	inp := NewInput([]byte(src))
	var result []string
	for inp.Ch != EOS {
		posL := inp.Pos
		inp.SkipToEOL()
		result = append(result, string(inp.Src[posL:inp.Pos]))
		inp.EatEOL()
	}
	return result
}

// Fence delimits a frontmatter block.
const Fence = "---"

// StripFrontmatter removes a leading fenced configuration block from the
// source. If the first non-space content line is not a fence, or the fence is
// never closed, the source is returned unchanged.
func StripFrontmatter(src string) string {
	lines := Lines(src)
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != Fence {
		return src
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == Fence {
			return strings.Join(lines[i+1:], "\n")
		}
	}
	return src
}

// FirstContentLine returns the first non-empty trimmed line of the source,
// after any frontmatter was removed. It returns "" if no such line exists.
func FirstContentLine(src string) string {
	inp := NewInput([]byte(StripFrontmatter(src)))
	for inp.Ch != EOS {
		inp.SkipSpace()
		if IsEOLEOS(inp.Ch) {
			inp.EatEOL()
			continue
		}
		posL := inp.Pos
		inp.SkipToEOL()
		return strings.TrimSpace(string(inp.Src[posL:inp.Pos]))
	}
	return ""
}
