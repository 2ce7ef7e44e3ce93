//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package pie provides the structural parser for pie charts.
package pie

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"codeberg.org/t73fde/accviz/diagram"
	"codeberg.org/t73fde/accviz/model"
	"codeberg.org/t73fde/accviz/parser"
)

func init() {
	parser.Register(&parser.Info{
		Type:  diagram.TypePie,
		Parse: parsePie,
	})
}

// A data line is `"label": value`, the quotes are optional.
var reSegment = regexp.MustCompile(`^(?:"([^"]*)"|([^:"]+?))\s*:\s*([0-9]+(?:\.[0-9]+)?)$`)

func parsePie(src string) model.Structure {
	p := &model.Pie{}
	for _, line := range parser.Lines(src) {
		m := reSegment.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		label := m[1]
		if label == "" {
			label = strings.TrimSpace(m[2])
		}
		value, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			continue
		}
		p.Segments = append(p.Segments, model.PieSegment{Label: label, Value: value})
		p.Total += value
	}
	// Narration order: by value descending, ties keep declaration order.
	sort.SliceStable(p.Segments, func(i, j int) bool {
		return p.Segments[i].Value > p.Segments[j].Value
	})
	return p
}
