//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package xychart provides the structural parser for xy charts.
package xychart

import (
	"strings"

	"codeberg.org/t73fde/accviz/diagram"
	"codeberg.org/t73fde/accviz/model"
	"codeberg.org/t73fde/accviz/parser"
)

func init() {
	parser.Register(&parser.Info{
		Type:  diagram.TypeXYChart,
		Parse: parseXYChart,
	})
}

func parseXYChart(src string) model.Structure {
	xy := &model.XYChart{}
	for _, line := range parser.Lines(src) {
		if rest, ok := strings.CutPrefix(line, "x-axis"); ok {
			xy.XLabel = axisLabel(rest)
			continue
		}
		if rest, ok := strings.CutPrefix(line, "y-axis"); ok {
			xy.YLabel = axisLabel(rest)
			continue
		}
		if rest, ok := strings.CutPrefix(line, "line"); ok {
			addDataset(xy, "line", rest)
			continue
		}
		if rest, ok := strings.CutPrefix(line, "bar"); ok {
			addDataset(xy, "bar", rest)
			continue
		}
	}
	return xy
}

// axisLabel extracts the label of an axis configuration line. A quoted label
// ends at its closing quote, an unquoted one at the range or category list.
func axisLabel(rest string) string {
	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, `"`) {
		if end := strings.Index(rest[1:], `"`); end >= 0 {
			return rest[1 : end+1]
		}
		return strings.Trim(rest, `"`)
	}
	if idx := strings.IndexAny(rest, "["); idx >= 0 {
		rest = rest[:idx]
	}
	return strings.TrimSpace(rest)
}

// addDataset records a data series, keeping the raw value list as written.
func addDataset(xy *model.XYChart, kind, rest string) {
	values := strings.TrimSpace(rest)
	values = strings.TrimPrefix(values, "[")
	values = strings.TrimSuffix(values, "]")
	xy.Datasets = append(xy.Datasets, model.XYDataset{Kind: kind, Values: strings.TrimSpace(values)})
}
