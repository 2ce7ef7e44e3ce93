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

// GanttTask is one task of a gantt chart. A task may carry multiple tags
// (milestone, done, active, crit).
type GanttTask struct {
	Name string
	Tags []string
}

// GanttSection groups the tasks of one gantt section.
type GanttSection struct {
	Name  string
	Tasks []GanttTask
}

// Gantt is the structural model of a gantt chart.
type Gantt struct {
	Sections []GanttSection
}

// StructureType returns the diagram type of this model.
func (*Gantt) StructureType() diagram.Type { return diagram.TypeGantt }

// IsEmpty returns true, if no section was found.
func (g *Gantt) IsEmpty() bool { return len(g.Sections) == 0 }

// Satisfaction bands for journey scores.
const (
	SatisfactionPositive = "positive"
	SatisfactionNeutral  = "neutral"
	SatisfactionNegative = "negative"
)

// JourneyStep is one step of a user journey with its score (1-5) and the
// acting participants.
type JourneyStep struct {
	Name   string
	Score  int
	Actors []string
}

// Satisfaction returns the satisfaction band of the step's score.
func (js *JourneyStep) Satisfaction() string {
	switch {
	case js.Score >= 4:
		return SatisfactionPositive
	case js.Score == 3:
		return SatisfactionNeutral
	default:
		return SatisfactionNegative
	}
}

// JourneySection groups the steps of one journey section.
type JourneySection struct {
	Name  string
	Steps []JourneyStep
}

// Journey is the structural model of a user journey diagram.
type Journey struct {
	Sections []JourneySection
}

// StructureType returns the diagram type of this model.
func (*Journey) StructureType() diagram.Type { return diagram.TypeJourney }

// IsEmpty returns true, if no section was found.
func (j *Journey) IsEmpty() bool { return len(j.Sections) == 0 }

// TimelineEntry is one period with its event text, which may be empty.
type TimelineEntry struct {
	Period string
	Event  string
}

// TimelineSection groups the entries of one timeline section. Entries before
// any section marker live in a section with an empty name.
type TimelineSection struct {
	Name    string
	Entries []TimelineEntry
}

// Timeline is the structural model of a timeline diagram.
type Timeline struct {
	Sections []TimelineSection
}

// StructureType returns the diagram type of this model.
func (*Timeline) StructureType() diagram.Type { return diagram.TypeTimeline }

// IsEmpty returns true, if no entry was found at all.
func (tl *Timeline) IsEmpty() bool {
	for _, sec := range tl.Sections {
		if len(sec.Entries) > 0 || sec.Name != "" {
			return false
		}
	}
	return true
}
