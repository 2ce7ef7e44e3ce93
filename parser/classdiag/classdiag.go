//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package classdiag provides the structural parser for class diagrams.
package classdiag

import (
	"regexp"
	"strings"

	"codeberg.org/t73fde/accviz/diagram"
	"codeberg.org/t73fde/accviz/model"
	"codeberg.org/t73fde/accviz/parser"
)

func init() {
	parser.Register(&parser.Info{
		Type:  diagram.TypeClassDiagram,
		Parse: parseClassDiagram,
	})
}

// Relation operators, multi-character tokens before shorter ones that they
// contain. reversed means the arrow points from the right class to the left
// one.
var relationOps = []struct {
	token    string
	kind     model.RelationKind
	reversed bool
}{
	{"<|--", model.RelationInheritance, true},
	{"--|>", model.RelationInheritance, false},
	{"..|>", model.RelationInheritance, false},
	{"<|..", model.RelationInheritance, true},
	{"*--", model.RelationComposition, false},
	{"--*", model.RelationComposition, true},
	{"o--", model.RelationAggregation, false},
	{"--o", model.RelationAggregation, true},
	{"-->", model.RelationAssociation, false},
	{"<--", model.RelationAssociation, true},
	{"..>", model.RelationDependency, false},
	{"<..", model.RelationDependency, true},
	{"--", model.RelationOther, false},
	{"..", model.RelationOther, false},
}

var (
	reClassDecl = regexp.MustCompile(`^class\s+([\w~]+)\s*(\{)?\s*$`)
	reMember    = regexp.MustCompile(`^([\w~]+)\s*:\s*(.+)$`)
	reClassName = regexp.MustCompile(`^[\w~]+`)
)

func parseClassDiagram(src string) model.Structure {
	cd := model.NewClassDiagram()
	var current *model.Class
	for _, line := range parser.Lines(src) {
		if line == "}" {
			current = nil
			continue
		}
		if m := reClassDecl.FindStringSubmatch(line); m != nil {
			cl := cd.EnsureClass(m[1])
			if m[2] == "{" {
				current = cl
			} else {
				current = nil
			}
			continue
		}
		if parseRelation(cd, line) {
			current = nil
			continue
		}
		if m := reMember.FindStringSubmatch(line); m != nil {
			addMember(cd.EnsureClass(m[1]), strings.TrimSpace(m[2]))
			continue
		}
		if current != nil {
			addMember(current, line)
		}
	}
	return cd
}

// parseRelation checks the line for a relationship operator and registers
// the relation. It reports whether the line was a relationship line.
func parseRelation(cd *model.ClassDiagram, line string) bool {
	for _, op := range relationOps {
		idx := tokenIndex(line, op.token)
		if idx < 0 {
			continue
		}
		left := className(strings.TrimSpace(line[:idx]))
		right := className(strings.TrimSpace(line[idx+len(op.token):]))
		if left == "" || right == "" {
			return false
		}
		cd.EnsureClass(left)
		cd.EnsureClass(right)
		from, to := left, right
		if op.reversed {
			from, to = right, left
		}
		cd.Relations = append(cd.Relations, model.ClassRelation{From: from, Kind: op.kind, To: to})
		return true
	}
	return false
}

// tokenIndex returns the index of the first occurrence of token in line that
// does not overlap an identifier, or -1. The aggregation tokens contain the
// letter "o", so a plain substring search would find them inside class names
// ("Foo--Bar" must not read as "Fo o-- Bar").
func tokenIndex(line, token string) int {
	for from := 0; ; {
		idx := strings.Index(line[from:], token)
		if idx < 0 {
			return -1
		}
		idx += from
		if tokenBoundaryOK(line, idx, len(token)) {
			return idx
		}
		from = idx + 1
	}
}

func tokenBoundaryOK(line string, idx, length int) bool {
	if isIdentChar(line[idx]) && idx > 0 && isIdentChar(line[idx-1]) {
		return false
	}
	if end := idx + length; isIdentChar(line[end-1]) && end < len(line) && isIdentChar(line[end]) {
		return false
	}
	return true
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '~' || ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// className extracts the bare class name, dropping cardinalities and labels.
func className(s string) string {
	s = strings.Trim(s, `" `)
	return reClassName.FindString(s)
}

// addMember classifies a member line: a parenthesis pair makes it a method,
// everything else is a property.
func addMember(cl *model.Class, member string) {
	member = strings.TrimSpace(member)
	if member == "" {
		return
	}
	if strings.Contains(member, "(") && strings.Contains(member, ")") {
		cl.Methods = append(cl.Methods, member)
	} else {
		cl.Properties = append(cl.Properties, member)
	}
}
