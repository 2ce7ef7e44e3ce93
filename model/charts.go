//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package model

import "codeberg.org/t73fde/accviz/diagram"

// PieSegment is one labelled value of a pie chart.
type PieSegment struct {
	Label string
	Value float64
}

// Pie is the structural model of a pie chart. Segments are ordered by value
// descending, ties keep their declaration order. Total is the derived sum of
// all segment values.
type Pie struct {
	Segments []PieSegment
	Total    float64
}

// StructureType returns the diagram type of this model.
func (*Pie) StructureType() diagram.Type { return diagram.TypePie }

// IsEmpty returns true, if no segment was found.
func (p *Pie) IsEmpty() bool { return len(p.Segments) == 0 }

// Percent returns the percentage of the given segment value, guarding
// against a zero total.
func (p *Pie) Percent(value float64) float64 {
	if p.Total == 0 {
		return 0
	}
	return value / p.Total * 100
}

// XYDataset is one data series of an xy chart. Values keeps the raw value
// list as written, narration does not need numeric parsing.
type XYDataset struct {
	Kind   string // "line" or "bar"
	Values string
}

// XYChart is the structural model of an xy chart.
type XYChart struct {
	XLabel   string
	YLabel   string
	Datasets []XYDataset
}

// StructureType returns the diagram type of this model.
func (*XYChart) StructureType() diagram.Type { return diagram.TypeXYChart }

// IsEmpty returns true, if neither axis labels nor datasets were found.
func (xy *XYChart) IsEmpty() bool {
	return xy.XLabel == "" && xy.YLabel == "" && len(xy.Datasets) == 0
}
