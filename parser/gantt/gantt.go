//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package gantt provides the structural parser for gantt charts.
package gantt

import (
	"strings"

	"codeberg.org/t73fde/accviz/diagram"
	"codeberg.org/t73fde/accviz/model"
	"codeberg.org/t73fde/accviz/parser"
	"codeberg.org/t73fde/accviz/strfun"
)

func init() {
	parser.Register(&parser.Info{
		Type:  diagram.TypeGantt,
		Parse: parseGantt,
	})
}

// Configuration keywords whose lines are no tasks, even when they carry a
// colon.
var configKeywords = strfun.NewSet(
	"gantt", "title", "dateFormat", "axisFormat", "tickInterval",
	"excludes", "includes", "todayMarker", "weekday", "weekend",
)

// Task tags are scanned independently, a task may carry several of them.
var taskTags = []string{"milestone", "done", "active", "crit"}

func parseGantt(src string) model.Structure {
	g := &model.Gantt{}
	current := -1
	for _, line := range parser.Lines(src) {
		if name, ok := strings.CutPrefix(line, "section "); ok {
			g.Sections = append(g.Sections, model.GanttSection{Name: strings.TrimSpace(name)})
			current = len(g.Sections) - 1
			continue
		}
		if keyword, _, found := strings.Cut(line, " "); found && configKeywords.Has(keyword) {
			continue
		}
		name, attrs, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" || configKeywords.Has(name) {
			continue
		}
		task := model.GanttTask{Name: name, Tags: scanTags(attrs)}
		if current < 0 {
			// Tasks before the first section header live in an unnamed one.
			g.Sections = append(g.Sections, model.GanttSection{})
			current = 0
		}
		g.Sections[current].Tasks = append(g.Sections[current].Tasks, task)
	}
	return g
}

// scanTags collects all task tags of the attribute list after the colon.
func scanTags(attrs string) []string {
	var tags []string
	for _, part := range strings.Split(attrs, ",") {
		part = strings.TrimSpace(part)
		for _, tag := range taskTags {
			if part == tag {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
