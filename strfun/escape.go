//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package strfun

import (
	"io"
	"strings"
)

var (
	escQuot = []byte("&quot;")
	escAmp  = []byte("&amp;")
	escApos = []byte("&#39;")
	escLt   = []byte("&lt;")
	escGt   = []byte("&gt;")
	escNull = []byte("�")
)

// HTMLEscape writes the string to the given writer, where every rune that has
// a special meaning in HTML is escaped.
func HTMLEscape(w io.Writer, s string) {
	var esc []byte
	last := 0
	for i, ch := range s {
		switch ch {
		case '\000':
			esc = escNull
		case '"':
			esc = escQuot
		case '\'':
			esc = escApos
		case '&':
			esc = escAmp
		case '<':
			esc = escLt
		case '>':
			esc = escGt
		default:
			continue
		}
		io.WriteString(w, s[last:i])
		w.Write(esc)
		last = i + 1
	}
	io.WriteString(w, s[last:])
}

// EscapeHTML returns the given string with every HTML-special rune escaped.
func EscapeHTML(s string) string {
	if !strings.ContainsAny(s, "\000\"'&<>") {
		return s
	}
	var sb strings.Builder
	HTMLEscape(&sb, s)
	return sb.String()
}
