//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package journey_test

import (
	"testing"

	"codeberg.org/t73fde/accviz/diagram"
	"codeberg.org/t73fde/accviz/model"
	"codeberg.org/t73fde/accviz/parser"

	_ "codeberg.org/t73fde/accviz/parser/journey" // Allow to use journey parser.
)

func parseJourney(t *testing.T, src string) *model.Journey {
	t.Helper()
	s := parser.ParseStructure(src, diagram.TypeJourney)
	j, ok := s.(*model.Journey)
	if !ok {
		t.Fatalf("expected *model.Journey, but got %T", s)
	}
	return j
}

func TestJourneySteps(t *testing.T) {
	t.Parallel()
	j := parseJourney(t, `journey
title My working day
section Go to work
Make tea : 5 : Me
Go upstairs : 3 : Me, Cat
section Go home
Sit down : 1 :
`)
	if len(j.Sections) != 2 {
		t.Fatalf("expected 2 sections, but got %d", len(j.Sections))
	}
	work := j.Sections[0]
	if work.Name != "Go to work" || len(work.Steps) != 2 {
		t.Fatalf("unexpected first section: %+v", work)
	}
	tea := work.Steps[0]
	if tea.Name != "Make tea" || tea.Score != 5 || len(tea.Actors) != 1 || tea.Actors[0] != "Me" {
		t.Errorf("unexpected step: %+v", tea)
	}
	if got := tea.Satisfaction(); got != model.SatisfactionPositive {
		t.Errorf("score 5: expected %q, but got %q", model.SatisfactionPositive, got)
	}
	stairs := work.Steps[1]
	if len(stairs.Actors) != 2 || stairs.Actors[1] != "Cat" {
		t.Errorf("actors not comma-split and trimmed: %+v", stairs)
	}
	if got := stairs.Satisfaction(); got != model.SatisfactionNeutral {
		t.Errorf("score 3: expected %q, but got %q", model.SatisfactionNeutral, got)
	}
	sit := j.Sections[1].Steps[0]
	if len(sit.Actors) != 0 {
		t.Errorf("expected no actors, but got %v", sit.Actors)
	}
	if got := sit.Satisfaction(); got != model.SatisfactionNegative {
		t.Errorf("score 1: expected %q, but got %q", model.SatisfactionNegative, got)
	}
}

func TestJourneyInvalidScore(t *testing.T) {
	t.Parallel()
	j := parseJourney(t, "journey\nsection S\nBad : 7 : Me\nAlso bad : x : Me\nGood : 2 : Me\n")
	if len(j.Sections) != 1 || len(j.Sections[0].Steps) != 1 {
		t.Fatalf("invalid scores must be skipped: %+v", j)
	}
	if j.Sections[0].Steps[0].Name != "Good" {
		t.Errorf("unexpected step: %+v", j.Sections[0].Steps[0])
	}
}
