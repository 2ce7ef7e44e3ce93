//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package nativeenc encodes a structural diagram model into its bracketed
// native form. The output is meant for debugging and tooling, not for users.
package nativeenc

import (
	"io"
	"strconv"

	"codeberg.org/t73fde/accviz/encoder"
	"codeberg.org/t73fde/accviz/model"
)

func init() {
	encoder.Register(encoder.EncodingNative, encoder.Info{
		Create: func() encoder.Encoder { return &nativeEncoder{} },
	})
}

type nativeEncoder struct{}

// WriteDiagram writes type, metadata and structure of the diagram.
func (ne *nativeEncoder) WriteDiagram(w io.Writer, d *model.Diagram) (int, error) {
	v := newVisitor(w)
	v.b.WriteStrings("[Diagram [Type ", d.Type.String(), "]")
	if d.Meta.HasTitle() {
		v.b.WriteStrings(" [Title ", strconv.Quote(d.Meta.Title), "]")
	}
	if d.Meta.HasDescription() {
		v.b.WriteStrings(" [Descr ", strconv.Quote(d.Meta.Description), "]")
	}
	v.b.WriteString(" ")
	v.visitStructure(d.Structure)
	v.b.WriteString("]")
	return v.b.Flush()
}

// WriteStructure writes the bare structure.
func (ne *nativeEncoder) WriteStructure(w io.Writer, s model.Structure) (int, error) {
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

func (v *visitor) quote(s string) { v.b.WriteString(strconv.Quote(s)) }

func (v *visitor) visitStructure(s model.Structure) {
	switch m := s.(type) {
	case *model.Flowchart:
		v.b.WriteString("[Flowchart [Nodes")
		for _, id := range m.Order {
			node := m.Nodes[id]
			v.b.WriteStrings(" [", id, " ")
			v.quote(node.Text)
			if node.IsQuestion {
				v.b.WriteString(" Question")
			}
			v.b.WriteString("]")
		}
		v.b.WriteString("] [Edges")
		for _, e := range m.Edges {
			v.b.WriteStrings(" [", e.From, " ", e.To)
			if e.Label != "" {
				v.b.WriteString(" ")
				v.quote(e.Label)
			}
			v.b.WriteString("]")
		}
		v.b.WriteString("]]")
	case *model.Pie:
		v.b.WriteString("[Pie")
		for _, seg := range m.Segments {
			v.b.WriteString(" [")
			v.quote(seg.Label)
			v.b.WriteStrings(" ", encoder.FormatValue(seg.Value), "]")
		}
		v.b.WriteStrings(" [Total ", encoder.FormatValue(m.Total), "]]")
	case *model.ClassDiagram:
		v.b.WriteString("[ClassDiagram [Classes")
		for _, name := range m.Order {
			cl := m.Classes[name]
			v.b.WriteStrings(" [", name,
				" [Methods ", strconv.Itoa(len(cl.Methods)),
				"] [Properties ", strconv.Itoa(len(cl.Properties)), "]]")
		}
		v.b.WriteString("] [Relations")
		for _, rel := range m.Relations {
			v.b.WriteStrings(" [", rel.From, " ", encoder.RelationVerb(rel.Kind), " ", rel.To, "]")
		}
		v.b.WriteString("]]")
	case *model.Gantt:
		v.b.WriteString("[Gantt")
		for _, sec := range m.Sections {
			v.b.WriteString(" [Section ")
			v.quote(sec.Name)
			for _, task := range sec.Tasks {
				v.b.WriteString(" [Task ")
				v.quote(task.Name)
				for _, tag := range task.Tags {
					v.b.WriteStrings(" ", tag)
				}
				v.b.WriteString("]")
			}
			v.b.WriteString("]")
		}
		v.b.WriteString("]")
	case *model.Journey:
		v.b.WriteString("[Journey")
		for _, sec := range m.Sections {
			v.b.WriteString(" [Section ")
			v.quote(sec.Name)
			for _, step := range sec.Steps {
				v.b.WriteString(" [Step ")
				v.quote(step.Name)
				v.b.WriteStrings(" ", strconv.Itoa(step.Score))
				for _, actor := range step.Actors {
					v.b.WriteString(" ")
					v.quote(actor)
				}
				v.b.WriteString("]")
			}
			v.b.WriteString("]")
		}
		v.b.WriteString("]")
	case *model.Mindmap:
		v.b.WriteString("[Mindmap")
		if m.Root != nil {
			v.b.WriteString(" ")
			v.visitMindmapNode(m.Root)
		}
		v.b.WriteString("]")
	case *model.Timeline:
		v.b.WriteString("[Timeline")
		for _, sec := range m.Sections {
			v.b.WriteString(" [Section ")
			v.quote(sec.Name)
			for _, e := range sec.Entries {
				v.b.WriteString(" [")
				v.quote(e.Period)
				v.b.WriteString(" ")
				v.quote(e.Event)
				v.b.WriteString("]")
			}
			v.b.WriteString("]")
		}
		v.b.WriteString("]")
	case *model.XYChart:
		v.b.WriteString("[XYChart [X ")
		v.quote(m.XLabel)
		v.b.WriteString("] [Y ")
		v.quote(m.YLabel)
		v.b.WriteString("]")
		for _, ds := range m.Datasets {
			v.b.WriteStrings(" [", ds.Kind, " ")
			v.quote(ds.Values)
			v.b.WriteString("]")
		}
		v.b.WriteString("]")
	case *model.Generic:
		v.b.WriteStrings("[Generic [Type ", m.Type.String(),
			"] [Lines ", strconv.Itoa(m.Lines),
			"] [Elements ", strconv.Itoa(m.Elements),
			"] [Connections ", strconv.Itoa(m.Connections),
			"] [Sections ", strconv.Itoa(m.Sections),
			"] [Labels ", strconv.Itoa(m.Labels), "]]")
	default:
		v.b.WriteString("[Unknown]")
	}
}

func (v *visitor) visitMindmapNode(node *model.MindmapNode) {
	v.b.WriteString("[")
	v.quote(node.Text)
	for _, child := range node.Children {
		v.b.WriteString(" ")
		v.visitMindmapNode(child)
	}
	v.b.WriteString("]")
}
