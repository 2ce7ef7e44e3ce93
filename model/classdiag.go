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

// Class is one class of a class diagram with its classified members.
type Class struct {
	Methods    []string
	Properties []string
}

// RelationKind enumerates the recognized relationship operators.
type RelationKind uint8

// Constants for RelationKind.
const (
	RelationOther       RelationKind = iota // unrecognized operator
	RelationInheritance                     // <|--
	RelationAssociation                     // -->
	RelationAggregation                     // o--
	RelationComposition                     // *--
	RelationDependency                      // ..>
)

// ClassRelation is one relationship line between two classes.
type ClassRelation struct {
	From string
	Kind RelationKind
	To   string
}

// ClassDiagram is the structural model of a class diagram. Order keeps the
// class names in declaration order.
type ClassDiagram struct {
	Order     []string
	Classes   map[string]*Class
	Relations []ClassRelation
}

// NewClassDiagram creates an empty class diagram model.
func NewClassDiagram() *ClassDiagram {
	return &ClassDiagram{Classes: make(map[string]*Class)}
}

// StructureType returns the diagram type of this model.
func (*ClassDiagram) StructureType() diagram.Type { return diagram.TypeClassDiagram }

// IsEmpty returns true, if neither classes nor relationships were found.
func (cd *ClassDiagram) IsEmpty() bool {
	return len(cd.Classes) == 0 && len(cd.Relations) == 0
}

// EnsureClass registers a class and returns it.
func (cd *ClassDiagram) EnsureClass(name string) *Class {
	if cl, found := cd.Classes[name]; found {
		return cl
	}
	cl := &Class{}
	cd.Order = append(cd.Order, name)
	cd.Classes[name] = cl
	return cl
}
