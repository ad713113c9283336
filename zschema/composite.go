// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zschema

// Array is a list of Element values.
type Array struct {
	Element Node
}

func ArrayOf(element Node) *Array { return &Array{Element: element} }

func (*Array) Kind() Kind { return KindArray }

// Tuple is a fixed-length list with one node per position.
type Tuple struct {
	Items []Node
}

func TupleOf(items ...Node) *Tuple { return &Tuple{Items: items} }

func (*Tuple) Kind() Kind { return KindTuple }

// Record is a string-keyed collection.
type Record struct {
	Key   Node
	Value Node
}

func RecordOf(key, value Node) *Record { return &Record{Key: key, Value: value} }

func (*Record) Kind() Kind { return KindRecord }

// Map is a keyed collection whose keys may be of any type.
type Map struct {
	Key   Node
	Value Node
}

func MapOf(key, value Node) *Map { return &Map{Key: key, Value: value} }

func (*Map) Kind() Kind { return KindMap }

// Set is a collection of unique Element values.
type Set struct {
	Element Node
}

func SetOf(element Node) *Set { return &Set{Element: element} }

func (*Set) Kind() Kind { return KindSet }

// Property is a named member of an Object.
type Property struct {
	Name string
	Node Node
}

func Prop(name string, node Node) Property { return Property{Name: name, Node: node} }

// Object is a record with named properties in declaration order.
type Object struct {
	Shape []Property
}

func ObjectOf(props ...Property) *Object { return &Object{Shape: props} }

func (*Object) Kind() Kind { return KindObject }

// Lookup returns the node of the named property.
func (o *Object) Lookup(name string) (Node, bool) {
	for _, p := range o.Shape {
		if p.Name == name {
			return p.Node, true
		}
	}
	return nil, false
}

// Extend returns a copy of o with props appended. A property with an
// existing name replaces the previous one in place.
func (o *Object) Extend(props ...Property) *Object {
	shape := make([]Property, len(o.Shape))
	copy(shape, o.Shape)
outer:
	for _, p := range props {
		for i := range shape {
			if shape[i].Name == p.Name {
				shape[i] = p
				continue outer
			}
		}
		shape = append(shape, p)
	}
	return &Object{Shape: shape}
}
