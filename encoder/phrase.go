//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package encoder

import (
	"strconv"

	"codeberg.org/t73fde/accviz/model"
)

// Plural formats a count with its correctly numbered noun, e.g. "1 node" or
// "2 nodes".
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + plural
}

// FormatValue renders a segment value without a trailing zero fraction.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

var relationVerb = map[model.RelationKind]string{
	model.RelationInheritance: "inherits from",
	model.RelationDependency:  "uses",
	model.RelationAggregation: "aggregates",
	model.RelationComposition: "is composed of",
}

// RelationVerb translates a relation operator into its human-readable verb.
func RelationVerb(kind model.RelationKind) string {
	if verb, ok := relationVerb[kind]; ok {
		return verb
	}
	return "relates to"
}

// Explicit empty-case messages. The narrative must describe an empty model,
// a blank output is never acceptable.
const (
	MsgNoFlowchart   = "No flowchart steps detected."
	MsgNoPie         = "No pie chart data detected."
	MsgNoClasses     = "No classes detected."
	MsgNoGantt       = "No gantt sections detected."
	MsgNoJourney     = "No journey sections detected."
	MsgEmptyMindmap  = "Empty mind map structure."
	MsgEmptyTimeline = "Empty timeline."
	MsgNoChartData   = "No chart data detected."
)

// Messages of the generic fallback narrative.
const (
	MsgNoDetail        = "Detailed narrative generation is not yet available for this diagram type."
	MsgStillAccessible = "Accessibility attributes are still applied to the rendered image."
)
