//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package htmlenc encodes a structural diagram model into sanitized HTML
// narrative fragments. Every interpolated string value from the diagram
// source is escaped, raw user text never reaches the output.
package htmlenc

import (
	"io"
	"strconv"

	"codeberg.org/t73fde/accviz/encoder"
	"codeberg.org/t73fde/accviz/model"
	"codeberg.org/t73fde/accviz/strfun"
)

func init() {
	encoder.Register(encoder.EncodingHTML, encoder.Info{
		Create:  func() encoder.Encoder { return &htmlEncoder{} },
		Default: true,
	})
}

type htmlEncoder struct{}

// WriteDiagram writes the metadata lead paragraph and the narrative body.
func (he *htmlEncoder) WriteDiagram(w io.Writer, d *model.Diagram) (int, error) {
	v := newVisitor(w)
	if d.Meta.HasTitle() {
		v.b.WriteString("<p><strong>")
		v.escape(d.Meta.Title)
		v.b.WriteString("</strong>")
		if d.Meta.HasDescription() {
			v.b.WriteString(": ")
			v.escape(d.Meta.Description)
		}
		v.b.WriteString("</p>\n")
	} else if d.Meta.HasDescription() {
		v.b.WriteString("<p>")
		v.escape(d.Meta.Description)
		v.b.WriteString("</p>\n")
	}
	v.visitStructure(d.Structure)
	return v.b.Flush()
}

// WriteStructure writes the narrative body only.
func (he *htmlEncoder) WriteStructure(w io.Writer, s model.Structure) (int, error) {
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

func (v *visitor) escape(s string) { strfun.HTMLEscape(&v.b, s) }

func (v *visitor) para(text string) {
	v.b.WriteStrings("<p>", text, "</p>\n")
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
		v.para(encoder.MsgNoDetail)
	}
}

func (v *visitor) visitFlowchart(fc *model.Flowchart) {
	if fc.IsEmpty() {
		v.para(encoder.MsgNoFlowchart)
		return
	}
	if len(fc.Order) > 0 {
		v.b.WriteString("<p>Start at: <strong>")
		v.escape(fc.NodeText(fc.Order[0]))
		v.b.WriteString("</strong></p>\n")
	}
	if len(fc.Edges) > 0 {
		v.b.WriteString("<ul>\n")
		for _, e := range fc.Edges {
			v.b.WriteString("<li>")
			v.visitFlowEdge(fc, e)
			v.b.WriteString("</li>\n")
		}
		v.b.WriteString("</ul>\n")
	}
	v.b.WriteStrings(
		"<p>",
		encoder.Plural(len(fc.Nodes), "node", "nodes"), ", ",
		encoder.Plural(len(fc.Edges), "connection", "connections"), ", ",
		encoder.Plural(fc.Decisions(), "decision point", "decision points"),
		"</p>\n")
}

func (v *visitor) visitFlowEdge(fc *model.Flowchart, e model.FlowEdge) {
	from, to := fc.NodeText(e.From), fc.NodeText(e.To)
	isQuestion := fc.Nodes[e.From].IsQuestion
	switch {
	case isQuestion && e.Label != "":
		v.b.WriteString("If <strong>")
		v.escape(from)
		v.b.WriteString("</strong> is <em>")
		v.escape(e.Label)
		v.b.WriteString("</em>, then → <strong>")
		v.escape(to)
		v.b.WriteString("</strong>")
	case isQuestion:
		v.b.WriteString("From <strong>")
		v.escape(from)
		v.b.WriteString("</strong> → <strong>")
		v.escape(to)
		v.b.WriteString("</strong>")
	case e.Label != "":
		v.b.WriteString("After <strong>")
		v.escape(from)
		v.b.WriteString("</strong>, <em>")
		v.escape(e.Label)
		v.b.WriteString("</em> → <strong>")
		v.escape(to)
		v.b.WriteString("</strong>")
	default:
		v.b.WriteString("<strong>")
		v.escape(from)
		v.b.WriteString("</strong> → <strong>")
		v.escape(to)
		v.b.WriteString("</strong>")
	}
}

func (v *visitor) visitPie(p *model.Pie) {
	if p.IsEmpty() {
		v.para(encoder.MsgNoPie)
		return
	}
	v.b.WriteString("<ul>\n")
	for _, seg := range p.Segments {
		v.b.WriteString("<li><strong>")
		v.escape(seg.Label)
		v.b.WriteStrings("</strong>: ", encoder.FormatValue(seg.Value),
			" (", encoder.FormatPercent(p.Percent(seg.Value)), ")</li>\n")
	}
	v.b.WriteString("</ul>\n")
	v.b.WriteStrings("<p>Total: ", encoder.FormatValue(p.Total), "</p>\n")
}

func (v *visitor) visitClassDiagram(cd *model.ClassDiagram) {
	if cd.IsEmpty() {
		v.para(encoder.MsgNoClasses)
		return
	}
	if len(cd.Order) > 0 {
		v.b.WriteString("<ul>\n")
		for _, name := range cd.Order {
			v.b.WriteString("<li><strong>")
			v.escape(name)
			v.b.WriteString("</strong>")
			if methods := cd.Classes[name].Methods; len(methods) > 0 {
				v.b.WriteString(" (methods: ")
				for i, method := range methods {
					if i > 0 {
						v.b.WriteString(", ")
					}
					v.escape(method)
				}
				v.b.WriteString(")")
			}
			v.b.WriteString("</li>\n")
		}
		v.b.WriteString("</ul>\n")
	}
	if len(cd.Relations) > 0 {
		v.b.WriteString("<p>Relationships:</p>\n<ul>\n")
		for _, rel := range cd.Relations {
			v.b.WriteString("<li><strong>")
			v.escape(rel.From)
			v.b.WriteStrings("</strong> ", encoder.RelationVerb(rel.Kind), " <strong>")
			v.escape(rel.To)
			v.b.WriteString("</strong></li>\n")
		}
		v.b.WriteString("</ul>\n")
	}
}

func (v *visitor) visitGantt(g *model.Gantt) {
	if g.IsEmpty() {
		v.para(encoder.MsgNoGantt)
		return
	}
	v.b.WriteString("<ul>\n")
	for _, sec := range g.Sections {
		v.b.WriteString("<li><strong>")
		v.escape(sec.Name)
		v.b.WriteString("</strong>")
		if len(sec.Tasks) > 0 {
			v.b.WriteString("\n<ul>\n")
			for _, task := range sec.Tasks {
				v.b.WriteString("<li>")
				v.escape(task.Name)
				if len(task.Tags) > 0 {
					v.b.WriteString(" (")
					for i, tag := range task.Tags {
						if i > 0 {
							v.b.WriteString(", ")
						}
						v.b.WriteString(tag)
					}
					v.b.WriteString(")")
				}
				v.b.WriteString("</li>\n")
			}
			v.b.WriteString("</ul>\n")
		}
		v.b.WriteString("</li>\n")
	}
	v.b.WriteString("</ul>\n")
}

func (v *visitor) visitJourney(j *model.Journey) {
	if j.IsEmpty() {
		v.para(encoder.MsgNoJourney)
		return
	}
	for _, sec := range j.Sections {
		if sec.Name != "" {
			v.b.WriteString("<p><strong>")
			v.escape(sec.Name)
			v.b.WriteString("</strong></p>\n")
		}
		if len(sec.Steps) == 0 {
			continue
		}
		v.b.WriteString("<ol>\n")
		for _, step := range sec.Steps {
			v.b.WriteString("<li>")
			v.escape(step.Name)
			v.b.WriteStrings(": ", step.Satisfaction(),
				" (", strconv.Itoa(step.Score), "/5)")
			if len(step.Actors) > 0 {
				v.b.WriteString(", involving ")
				for i, actor := range step.Actors {
					if i > 0 {
						v.b.WriteString(", ")
					}
					v.escape(actor)
				}
			}
			v.b.WriteString("</li>\n")
		}
		v.b.WriteString("</ol>\n")
	}
}

func (v *visitor) visitMindmap(mm *model.Mindmap) {
	if mm.IsEmpty() {
		v.para(encoder.MsgEmptyMindmap)
		return
	}
	v.visitMindmapNodes([]*model.MindmapNode{mm.Root})
}

func (v *visitor) visitMindmapNodes(nodes []*model.MindmapNode) {
	v.b.WriteString("<ul>\n")
	for _, node := range nodes {
		v.b.WriteString("<li>")
		v.escape(node.Text)
		if len(node.Children) > 0 {
			v.b.WriteString("\n")
			v.visitMindmapNodes(node.Children)
		}
		v.b.WriteString("</li>\n")
	}
	v.b.WriteString("</ul>\n")
}

func (v *visitor) visitTimeline(tl *model.Timeline) {
	if tl.IsEmpty() {
		v.para(encoder.MsgEmptyTimeline)
		return
	}
	for _, sec := range tl.Sections {
		if sec.Name != "" {
			v.b.WriteString("<p><strong>")
			v.escape(sec.Name)
			v.b.WriteString("</strong></p>\n")
		}
		if len(sec.Entries) == 0 {
			continue
		}
		v.b.WriteString("<ul>\n")
		for _, e := range sec.Entries {
			v.b.WriteString("<li>")
			v.escape(e.Period)
			if e.Event != "" {
				v.b.WriteString(": ")
				v.escape(e.Event)
			}
			v.b.WriteString("</li>\n")
		}
		v.b.WriteString("</ul>\n")
	}
}

func (v *visitor) visitXYChart(xy *model.XYChart) {
	if xy.IsEmpty() {
		v.para(encoder.MsgNoChartData)
		return
	}
	if xy.XLabel != "" || xy.YLabel != "" {
		v.b.WriteString("<p>")
		if xy.XLabel != "" {
			v.b.WriteString("X axis: <em>")
			v.escape(xy.XLabel)
			v.b.WriteString("</em>")
			if xy.YLabel != "" {
				v.b.WriteString(", ")
			}
		}
		if xy.YLabel != "" {
			v.b.WriteString("Y axis: <em>")
			v.escape(xy.YLabel)
			v.b.WriteString("</em>")
		}
		v.b.WriteString("</p>\n")
	}
	if len(xy.Datasets) > 0 {
		v.b.WriteString("<ul>\n")
		for _, ds := range xy.Datasets {
			v.b.WriteStrings("<li>", ds.Kind, " series: ")
			v.escape(ds.Values)
			v.b.WriteString("</li>\n")
		}
		v.b.WriteString("</ul>\n")
	}
}

func (v *visitor) visitGeneric(g *model.Generic) {
	v.b.WriteStrings("<p>Diagram type: <strong>", g.Type.String(), "</strong></p>\n")
	v.b.WriteStrings(
		"<p>",
		encoder.Plural(g.Lines, "line", "lines"), ", ",
		encoder.Plural(g.Elements, "element", "elements"), ", ",
		encoder.Plural(g.Connections, "connection", "connections"),
		"</p>\n")
	v.para(encoder.MsgNoDetail + " " + encoder.MsgStillAccessible)
}
