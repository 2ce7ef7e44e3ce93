//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package xychart_test

import (
	"testing"

	"codeberg.org/t73fde/accviz/diagram"
	"codeberg.org/t73fde/accviz/model"
	"codeberg.org/t73fde/accviz/parser"

	_ "codeberg.org/t73fde/accviz/parser/xychart" // Allow to use xychart parser.
)

func parseXYChart(t *testing.T, src string) *model.XYChart {
	t.Helper()
	s := parser.ParseStructure(src, diagram.TypeXYChart)
	xy, ok := s.(*model.XYChart)
	if !ok {
		t.Fatalf("expected *model.XYChart, but got %T", s)
	}
	return xy
}

func TestXYChart(t *testing.T) {
	t.Parallel()
	xy := parseXYChart(t, `xychart-beta
title "Sales Revenue"
x-axis "Month" [jan, feb, mar]
y-axis "Revenue (in $)" 4000 --> 11000
bar [5000, 6000, 7500]
line [5000, 6000, 7500]
`)
	if xy.XLabel != "Month" {
		t.Errorf("x label: expected %q, but got %q", "Month", xy.XLabel)
	}
	if xy.YLabel != "Revenue (in $)" {
		t.Errorf("y label: expected %q, but got %q", "Revenue (in $)", xy.YLabel)
	}
	if len(xy.Datasets) != 2 {
		t.Fatalf("expected 2 datasets, but got %d", len(xy.Datasets))
	}
	if ds := xy.Datasets[0]; ds.Kind != "bar" || ds.Values != "5000, 6000, 7500" {
		t.Errorf("unexpected dataset: %+v", ds)
	}
	if ds := xy.Datasets[1]; ds.Kind != "line" || ds.Values != "5000, 6000, 7500" {
		t.Errorf("unexpected dataset: %+v", ds)
	}
}

func TestXYChartUnquotedAxis(t *testing.T) {
	t.Parallel()
	xy := parseXYChart(t, "xychart-beta\nx-axis Months [a, b]\n")
	if xy.XLabel != "Months" {
		t.Errorf("expected %q, but got %q", "Months", xy.XLabel)
	}
}

func TestXYChartEmpty(t *testing.T) {
	t.Parallel()
	if xy := parseXYChart(t, "xychart-beta\n"); !xy.IsEmpty() {
		t.Errorf("expected empty model, but got %+v", xy)
	}
}
