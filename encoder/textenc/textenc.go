//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package textenc encodes a structural diagram model into its plain text
// narrative. It mirrors the HTML narrative without any markup.
package textenc

import (
	"io"
	"strconv"
	"strings"

	"codeberg.org/t73fde/accviz/encoder"
	"codeberg.org/t73fde/accviz/model"
)

func init() {
	encoder.Register(encoder.EncodingText, encoder.Info{
		Create: func() encoder.Encoder { return &textEncoder{} },
	})
}

type textEncoder struct{}

// WriteDiagram writes the metadata lead line and the narrative body.
func (te *textEncoder) WriteDiagram(w io.Writer, d *model.Diagram) (int, error) {
	v := newVisitor(w)
	if d.Meta.HasTitle() {
		v.b.WriteString(d.Meta.Title)
		if d.Meta.HasDescription() {
			v.b.WriteStrings(": ", d.Meta.Description)
		}
		v.b.WriteString("\n")
	} else if d.Meta.HasDescription() {
		v.b.WriteStrings(d.Meta.Description, "\n")
	}
	v.visitStructure(d.Structure)
	return v.b.Flush()
}

// WriteStructure writes the narrative body only.
func (te *textEncoder) WriteStructure(w io.Writer, s model.Structure) (int, error) {
	v := newVisitor(w)
	v.visitStructure(s)
	return v.b.Flush()
}

type visitor struct {
	b encoder.BufWriter
}

func newVisitor(w io.Writer) *visitor {
	return &visitor{b: encoder.NewBufWriter(w)}
}

func (v *visitor) line(parts ...string) {
	v.b.WriteStrings(parts...)
	v.b.WriteString("\n")
}

func (v *visitor) item(depth int, parts ...string) {
	v.b.WriteString(strings.Repeat("  ", depth))
	v.b.WriteString("- ")
	v.line(parts...)
}

func (v *visitor) visitStructure(s model.Structure) {
	switch m := s.(type) {
	case *model.Flowchart:
		v.visitFlowchart(m)
	case *model.Pie:
		v.visitPie(m)
	case *model.ClassDiagram:
		v.visitClassDiagram(m)
	case *model.Gantt:
		v.visitGantt(m)
	case *model.Journey:
		v.visitJourney(m)
	case *model.Mindmap:
		v.visitMindmap(m)
	case *model.Timeline:
		v.visitTimeline(m)
	case *model.XYChart:
		v.visitXYChart(m)
	case *model.Generic:
		v.visitGeneric(m)
	default:
		v.line(encoder.MsgNoDetail)
	}
}

func (v *visitor) visitFlowchart(fc *model.Flowchart) {
	if fc.IsEmpty() {
		v.line(encoder.MsgNoFlowchart)
		return
	}
	if len(fc.Order) > 0 {
		v.line("Start at: ", fc.NodeText(fc.Order[0]))
	}
	for _, e := range fc.Edges {
		from, to := fc.NodeText(e.From), fc.NodeText(e.To)
		switch {
		case fc.Nodes[e.From].IsQuestion && e.Label != "":
			v.item(0, "If ", from, " is ", e.Label, ", then → ", to)
		case fc.Nodes[e.From].IsQuestion:
			v.item(0, "From ", from, " → ", to)
		case e.Label != "":
			v.item(0, "After ", from, ", ", e.Label, " → ", to)
		default:
			v.item(0, from, " → ", to)
		}
	}
	v.line(
		encoder.Plural(len(fc.Nodes), "node", "nodes"), ", ",
		encoder.Plural(len(fc.Edges), "connection", "connections"), ", ",
		encoder.Plural(fc.Decisions(), "decision point", "decision points"))
}

func (v *visitor) visitPie(p *model.Pie) {
	if p.IsEmpty() {
		v.line(encoder.MsgNoPie)
		return
	}
	for _, seg := range p.Segments {
		v.item(0, seg.Label, ": ", encoder.FormatValue(seg.Value),
			" (", encoder.FormatPercent(p.Percent(seg.Value)), ")")
	}
	v.line("Total: ", encoder.FormatValue(p.Total))
}

func (v *visitor) visitClassDiagram(cd *model.ClassDiagram) {
	if cd.IsEmpty() {
		v.line(encoder.MsgNoClasses)
		return
	}
	for _, name := range cd.Order {
		if methods := cd.Classes[name].Methods; len(methods) > 0 {
			v.item(0, name, " (methods: ", strings.Join(methods, ", "), ")")
		} else {
			v.item(0, name)
		}
	}
	if len(cd.Relations) > 0 {
		v.line("Relationships:")
		for _, rel := range cd.Relations {
			v.item(0, rel.From, " ", encoder.RelationVerb(rel.Kind), " ", rel.To)
		}
	}
}

func (v *visitor) visitGantt(g *model.Gantt) {
	if g.IsEmpty() {
		v.line(encoder.MsgNoGantt)
		return
	}
	for _, sec := range g.Sections {
		v.item(0, sec.Name)
		for _, task := range sec.Tasks {
			if len(task.Tags) > 0 {
				v.item(1, task.Name, " (", strings.Join(task.Tags, ", "), ")")
			} else {
				v.item(1, task.Name)
			}
		}
	}
}

func (v *visitor) visitJourney(j *model.Journey) {
	if j.IsEmpty() {
		v.line(encoder.MsgNoJourney)
		return
	}
	for _, sec := range j.Sections {
		if sec.Name != "" {
			v.line(sec.Name, ":")
		}
		for i, step := range sec.Steps {
			parts := []string{strconv.Itoa(i + 1), ". ", step.Name, ": ",
				step.Satisfaction(), " (", strconv.Itoa(step.Score), "/5)"}
			if len(step.Actors) > 0 {
				parts = append(parts, ", involving ", strings.Join(step.Actors, ", "))
			}
			v.line(parts...)
		}
	}
}

func (v *visitor) visitMindmap(mm *model.Mindmap) {
	if mm.IsEmpty() {
		v.line(encoder.MsgEmptyMindmap)
		return
	}
	mm.Walk(func(node *model.MindmapNode, depth int) {
		v.item(depth, node.Text)
	})
}

func (v *visitor) visitTimeline(tl *model.Timeline) {
	if tl.IsEmpty() {
		v.line(encoder.MsgEmptyTimeline)
		return
	}
	for _, sec := range tl.Sections {
		if sec.Name != "" {
			v.line(sec.Name, ":")
		}
		for _, e := range sec.Entries {
			if e.Event != "" {
				v.item(0, e.Period, ": ", e.Event)
			} else {
				v.item(0, e.Period)
			}
		}
	}
}

func (v *visitor) visitXYChart(xy *model.XYChart) {
	if xy.IsEmpty() {
		v.line(encoder.MsgNoChartData)
		return
	}
	if xy.XLabel != "" || xy.YLabel != "" {
		var parts []string
		if xy.XLabel != "" {
			parts = append(parts, "X axis: ", xy.XLabel)
		}
		if xy.YLabel != "" {
			if len(parts) > 0 {
				parts = append(parts, ", ")
			}
			parts = append(parts, "Y axis: ", xy.YLabel)
		}
		v.line(parts...)
	}
	for _, ds := range xy.Datasets {
		v.item(0, ds.Kind, " series: ", ds.Values)
	}
}

func (v *visitor) visitGeneric(g *model.Generic) {
	v.line("Diagram type: ", g.Type.String())
	v.line(
		encoder.Plural(g.Lines, "line", "lines"), ", ",
		encoder.Plural(g.Elements, "element", "elements"), ", ",
		encoder.Plural(g.Connections, "connection", "connections"))
	v.line(encoder.MsgNoDetail, " ", encoder.MsgStillAccessible)
}
