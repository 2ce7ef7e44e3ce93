//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package timeline provides the structural parser for timeline diagrams.
package timeline

import (
	"strings"

	"codeberg.org/t73fde/accviz/diagram"
	"codeberg.org/t73fde/accviz/model"
	"codeberg.org/t73fde/accviz/parser"
)

func init() {
	parser.Register(&parser.Info{
		Type:  diagram.TypeTimeline,
		Parse: parseTimeline,
	})
}

func parseTimeline(src string) model.Structure {
	tl := &model.Timeline{}
	current := -1
	for _, line := range parser.Lines(src) {
		if strings.HasPrefix(line, "title ") {
			continue
		}
		// A section marker carries both the keyword and a colon.
		if strings.HasPrefix(line, "section") && strings.Contains(line, ":") {
			_, name, _ := strings.Cut(line, ":")
			tl.Sections = append(tl.Sections, model.TimelineSection{Name: strings.TrimSpace(name)})
			current = len(tl.Sections) - 1
			continue
		}
		period, event, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		period = strings.TrimSpace(period)
		if period == "" {
			continue
		}
		entry := model.TimelineEntry{Period: period, Event: strings.TrimSpace(event)}
		if current < 0 {
			// Entries before the first section live in an unnamed one.
			tl.Sections = append(tl.Sections, model.TimelineSection{})
			current = 0
		}
		tl.Sections[current].Entries = append(tl.Sections[current].Entries, entry)
	}
	return tl
}
