// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zschema

// Optional allows Inner to be absent.
type Optional struct {
	Inner Node
}

func OptionalOf(inner Node) *Optional { return &Optional{Inner: inner} }

func (*Optional) Kind() Kind { return KindOptional }

// Nullable allows Inner to be null.
type Nullable struct {
	Inner Node
}

func NullableOf(inner Node) *Nullable { return &Nullable{Inner: inner} }

func (*Nullable) Kind() Kind { return KindNullable }

// Default substitutes Value when the input is absent.
type Default struct {
	Inner Node
	Value any
}

func WithDefault(inner Node, v any) *Default { return &Default{Inner: inner, Value: v} }

func (*Default) Kind() Kind { return KindDefault }

// Effect tells what an Effects node does to values.
type Effect string

const (
	EffectRefinement Effect = "refinement"
	EffectTransform  Effect = "transform"
	EffectPreprocess Effect = "preprocess"
)

// Effects runs Fn on values of Inner. Fn never changes the shape.
type Effects struct {
	Inner  Node
	Effect Effect
	Fn     any
}

func (*Effects) Kind() Kind { return KindEffects }

// Refine attaches a validation predicate to inner.
func Refine(inner Node, fn func(any) bool) *Effects {
	return &Effects{Inner: inner, Effect: EffectRefinement, Fn: fn}
}

// Transform attaches a value transform to inner.
func Transform(inner Node, fn func(any) (any, error)) *Effects {
	return &Effects{Inner: inner, Effect: EffectTransform, Fn: fn}
}

// Preprocess attaches a transform applied before inner validates.
func Preprocess(inner Node, fn func(any) any) *Effects {
	return &Effects{Inner: inner, Effect: EffectPreprocess, Fn: fn}
}
