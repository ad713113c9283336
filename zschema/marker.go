// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zschema

// Function is a callable value.
type Function struct{}

func Func() *Function { return &Function{} }

func (*Function) Kind() Kind { return KindFunction }

// Promise resolves to Inner.
type Promise struct {
	Inner Node
}

func PromiseOf(inner Node) *Promise { return &Promise{Inner: inner} }

func (*Promise) Kind() Kind { return KindPromise }

// Lazy defers construction of its node, usually for recursive schemas.
type Lazy struct {
	Getter func() Node
}

func LazyOf(getter func() Node) *Lazy { return &Lazy{Getter: getter} }

func (*Lazy) Kind() Kind { return KindLazy }

type (
	Undefined struct{}
	Null      struct{}
	Any       struct{}
	Unknown   struct{}
	Never     struct{}
	Void      struct{}
)

func UndefinedValue() *Undefined { return &Undefined{} }
func NullValue() *Null           { return &Null{} }
func AnyValue() *Any             { return &Any{} }
func UnknownValue() *Unknown     { return &Unknown{} }
func NeverValue() *Never         { return &Never{} }
func VoidValue() *Void           { return &Void{} }

func (*Undefined) Kind() Kind { return KindUndefined }
func (*Null) Kind() Kind      { return KindNull }
func (*Any) Kind() Kind       { return KindAny }
func (*Unknown) Kind() Kind   { return KindUnknown }
func (*Never) Kind() Kind     { return KindNever }
func (*Void) Kind() Kind      { return KindVoid }

// Union accepts a value matching any of Options.
type Union struct {
	Options []Node
}

func UnionOf(options ...Node) *Union { return &Union{Options: options} }

func (*Union) Kind() Kind { return KindUnion }

// DiscriminatedUnion selects one of Options by the value of Discriminator.
type DiscriminatedUnion struct {
	Discriminator string
	Options       []*Object
}

func Discriminated(key string, options ...*Object) *DiscriminatedUnion {
	return &DiscriminatedUnion{Discriminator: key, Options: options}
}

func (*DiscriminatedUnion) Kind() Kind { return KindDiscriminatedUnion }

// Intersection accepts values matching both Left and Right.
type Intersection struct {
	Left  Node
	Right Node
}

func IntersectionOf(left, right Node) *Intersection {
	return &Intersection{Left: left, Right: right}
}

func (*Intersection) Kind() Kind { return KindIntersection }

// Opaque stands for a node kind this package does not model, such as a
// symbol or branded type coming from another schema source.
type Opaque struct {
	Name string
}

func Custom(name string) *Opaque { return &Opaque{Name: name} }

func (*Opaque) Kind() Kind { return KindOther }
