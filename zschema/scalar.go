// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zschema

import "regexp"

// Boolean is a true/false value.
type Boolean struct{}

func Bool() *Boolean { return &Boolean{} }

func (*Boolean) Kind() Kind { return KindBoolean }

// NumberCheckKind tags a constraint applied to a Number.
type NumberCheckKind string

const (
	NumberCheckInt        NumberCheckKind = "int"
	NumberCheckMin        NumberCheckKind = "min"
	NumberCheckMax        NumberCheckKind = "max"
	NumberCheckMultipleOf NumberCheckKind = "multipleOf"
	NumberCheckFinite     NumberCheckKind = "finite"
)

// NumberCheck is a single constraint on a Number.
type NumberCheck struct {
	Kind      NumberCheckKind
	Value     float64
	Inclusive bool
}

// Number is a floating point or, with an int check, an integer value.
type Number struct {
	Checks []NumberCheck
}

func Num() *Number { return &Number{} }

func (*Number) Kind() Kind { return KindNumber }

func (n *Number) with(c NumberCheck) *Number {
	checks := make([]NumberCheck, 0, len(n.Checks)+1)
	checks = append(checks, n.Checks...)
	return &Number{Checks: append(checks, c)}
}

// Int returns a copy of n restricted to integers.
func (n *Number) Int() *Number { return n.with(NumberCheck{Kind: NumberCheckInt}) }

// Min returns a copy of n with an inclusive lower bound.
func (n *Number) Min(v float64) *Number {
	return n.with(NumberCheck{Kind: NumberCheckMin, Value: v, Inclusive: true})
}

// Max returns a copy of n with an inclusive upper bound.
func (n *Number) Max(v float64) *Number {
	return n.with(NumberCheck{Kind: NumberCheckMax, Value: v, Inclusive: true})
}

// Gt returns a copy of n with an exclusive lower bound.
func (n *Number) Gt(v float64) *Number {
	return n.with(NumberCheck{Kind: NumberCheckMin, Value: v})
}

// Lt returns a copy of n with an exclusive upper bound.
func (n *Number) Lt(v float64) *Number {
	return n.with(NumberCheck{Kind: NumberCheckMax, Value: v})
}

func (n *Number) MultipleOf(v float64) *Number {
	return n.with(NumberCheck{Kind: NumberCheckMultipleOf, Value: v})
}

func (n *Number) Finite() *Number { return n.with(NumberCheck{Kind: NumberCheckFinite}) }

// HasCheck reports whether a constraint of kind k was applied.
func (n *Number) HasCheck(k NumberCheckKind) bool {
	for _, c := range n.Checks {
		if c.Kind == k {
			return true
		}
	}
	return false
}

// BigInt is an arbitrary-precision integer.
type BigInt struct{}

func Big() *BigInt { return &BigInt{} }

func (*BigInt) Kind() Kind { return KindBigInt }

// NaN only accepts the not-a-number value.
type NaN struct{}

func NotANumber() *NaN { return &NaN{} }

func (*NaN) Kind() Kind { return KindNaN }

// StringCheckKind tags a constraint applied to a String.
type StringCheckKind string

const (
	StringCheckRegex StringCheckKind = "regex"
	StringCheckMin   StringCheckKind = "min"
	StringCheckMax   StringCheckKind = "max"
	StringCheckEmail StringCheckKind = "email"
	StringCheckURL   StringCheckKind = "url"
	StringCheckUUID  StringCheckKind = "uuid"
)

// StringCheck is a single constraint on a String. Regex is only set for
// StringCheckRegex and Value only for the length checks.
type StringCheck struct {
	Kind  StringCheckKind
	Regex *regexp.Regexp
	Value int
}

// String is a text value.
type String struct {
	Checks []StringCheck
}

func Str() *String { return &String{} }

func (*String) Kind() Kind { return KindString }

func (s *String) with(c StringCheck) *String {
	checks := make([]StringCheck, 0, len(s.Checks)+1)
	checks = append(checks, s.Checks...)
	return &String{Checks: append(checks, c)}
}

// Regex returns a copy of s that must match re. The pointer is kept as-is.
func (s *String) Regex(re *regexp.Regexp) *String {
	return s.with(StringCheck{Kind: StringCheckRegex, Regex: re})
}

func (s *String) Min(n int) *String { return s.with(StringCheck{Kind: StringCheckMin, Value: n}) }

func (s *String) Max(n int) *String { return s.with(StringCheck{Kind: StringCheckMax, Value: n}) }

func (s *String) Email() *String { return s.with(StringCheck{Kind: StringCheckEmail}) }

func (s *String) URL() *String { return s.with(StringCheck{Kind: StringCheckURL}) }

func (s *String) UUID() *String { return s.with(StringCheck{Kind: StringCheckUUID}) }

// Patterns returns the regular expressions of every regex check, in order.
func (s *String) Patterns() []*regexp.Regexp {
	var res []*regexp.Regexp
	for _, c := range s.Checks {
		if c.Kind == StringCheckRegex && c.Regex != nil {
			res = append(res, c.Regex)
		}
	}
	return res
}

// Date is a point in time.
type Date struct{}

func DateTime() *Date { return &Date{} }

func (*Date) Kind() Kind { return KindDate }

// Enum is one of a fixed set of strings.
type Enum struct {
	Values []string
}

func EnumOf(values ...string) *Enum { return &Enum{Values: values} }

func (*Enum) Kind() Kind { return KindEnum }

// NativeEnum is backed by named constants of any type.
type NativeEnum struct {
	Values map[string]any
}

func NativeEnumOf(values map[string]any) *NativeEnum { return &NativeEnum{Values: values} }

func (*NativeEnum) Kind() Kind { return KindNativeEnum }

// Literal accepts exactly Value.
type Literal struct {
	Value any
}

func LiteralOf(v any) *Literal { return &Literal{Value: v} }

func (*Literal) Kind() Kind { return KindLiteral }
