//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package journey provides the structural parser for user journey diagrams.
package journey

import (
	"strconv"
	"strings"

	"codeberg.org/t73fde/accviz/diagram"
	"codeberg.org/t73fde/accviz/model"
	"codeberg.org/t73fde/accviz/parser"
)

func init() {
	parser.Register(&parser.Info{
		Type:  diagram.TypeJourney,
		Parse: parseJourney,
	})
}

func parseJourney(src string) model.Structure {
	j := &model.Journey{}
	current := -1
	for _, line := range parser.Lines(src) {
		if name, ok := strings.CutPrefix(line, "section "); ok {
			j.Sections = append(j.Sections, model.JourneySection{Name: strings.TrimSpace(name)})
			current = len(j.Sections) - 1
			continue
		}
		if strings.HasPrefix(line, "title ") {
			continue
		}
		step, ok := parseStep(line)
		if !ok {
			continue
		}
		if current < 0 {
			j.Sections = append(j.Sections, model.JourneySection{})
			current = 0
		}
		j.Sections[current].Steps = append(j.Sections[current].Steps, step)
	}
	return j
}

// parseStep matches "name : score : actor[, actor...]". The score must be an
// integer between 1 and 5, otherwise the line is skipped.
func parseStep(line string) (model.JourneyStep, bool) {
	parts := strings.SplitN(line, ":", 3)
	if len(parts) < 2 {
		return model.JourneyStep{}, false
	}
	name := strings.TrimSpace(parts[0])
	score, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if name == "" || err != nil || score < 1 || score > 5 {
		return model.JourneyStep{}, false
	}
	step := model.JourneyStep{Name: name, Score: score}
	if len(parts) == 3 {
		for _, actor := range strings.Split(parts[2], ",") {
			if actor = strings.TrimSpace(actor); actor != "" {
				step.Actors = append(step.Actors, actor)
			}
		}
	}
	return step, true
}
