// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/minodisk/zoq"
	"github.com/minodisk/zoq/zschema"
)

var (
	ErrNoSchema      = errors.New("no schema")
	ErrNotObject     = errors.New("root schema is not an object")
	ErrUnresolvedRef = errors.New("unresolved $ref")
)

// ToNode adapts the document to a schema tree. The root must describe an
// object.
//
// Recursive $refs become lazy nodes, which conversion skips. Constructs
// that BigQuery cannot hold (unions, intersections, "not") are adapted
// faithfully and left for the converter to reject.
func ToNode(doc *Document) (*zschema.Object, error) {
	if doc == nil || doc.Schema == nil {
		return nil, ErrNoSchema
	}
	// the root is being resolved while it is adapted, so "#" is recursive
	a := &adapter{doc: doc, resolving: map[string]bool{"#": true}}
	n, err := a.node(doc.Schema, "")
	if err != nil {
		return nil, err
	}
	obj, ok := n.(*zschema.Object)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotObject, zschema.TypeName(n))
	}
	return obj, nil
}

type adapter struct {
	doc       *Document
	resolving map[string]bool
}

func (a *adapter) node(s *jsonschema.Schema, path string) (zschema.Node, error) {
	if s == nil {
		return zschema.AnyValue(), nil
	}
	if isFalse(s) {
		return zschema.NeverValue(), nil
	}
	if s.Ref != "" {
		return a.ref(s.Ref, path)
	}

	n, err := a.typed(s, path)
	if err != nil {
		return nil, err
	}
	if len(s.Default) > 0 {
		var v any
		if err := json.Unmarshal(s.Default, &v); err != nil {
			return nil, fmt.Errorf("%s: invalid default: %w", at(path), err)
		}
		n = zschema.WithDefault(n, v)
	}
	return n, nil
}

func (a *adapter) ref(ref, path string) (zschema.Node, error) {
	target, err := a.lookup(ref)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", at(path), err)
	}
	if a.resolving[ref] {
		return zschema.LazyOf(func() zschema.Node {
			n, err := (&adapter{doc: a.doc, resolving: map[string]bool{ref: true}}).node(target, path)
			if err != nil {
				return zschema.NeverValue()
			}
			return n
		}), nil
	}
	a.resolving[ref] = true
	defer delete(a.resolving, ref)
	return a.node(target, path)
}

func (a *adapter) lookup(ref string) (*jsonschema.Schema, error) {
	if ref == "#" {
		return a.doc.Schema, nil
	}
	if name, ok := DefName(ref); ok {
		if s, ok := a.doc.Schema.Defs[name]; ok {
			return s, nil
		}
		if s, ok := a.doc.Schema.Definitions[name]; ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnresolvedRef, ref)
}

func (a *adapter) typed(s *jsonschema.Schema, path string) (zschema.Node, error) {
	switch {
	case s.Const != nil:
		return zschema.LiteralOf(*s.Const), nil
	case len(s.Enum) > 0:
		return enum(s.Enum), nil
	case len(s.AllOf) > 0:
		return a.allOf(s, path)
	case len(s.AnyOf) > 0:
		return a.options(s.AnyOf, path)
	case len(s.OneOf) > 0:
		return a.options(s.OneOf, path)
	case s.Not != nil:
		return zschema.Custom("not"), nil
	}

	types := s.Types
	if s.Type != "" {
		types = []string{s.Type}
	}
	nullable := slices.Contains(types, "null")
	types = slices.DeleteFunc(slices.Clone(types), func(t string) bool { return t == "null" })

	var (
		n   zschema.Node
		err error
	)
	switch len(types) {
	case 0:
		if nullable {
			return zschema.NullValue(), nil
		}
		n, err = a.untyped(s, path)
	case 1:
		n, err = a.ofType(types[0], s, path)
	default:
		opts := make([]zschema.Node, 0, len(types))
		for _, t := range types {
			o, err := a.ofType(t, s, path)
			if err != nil {
				return nil, err
			}
			opts = append(opts, o)
		}
		n = zschema.UnionOf(opts...)
	}
	if err != nil {
		return nil, err
	}
	if nullable {
		n = zschema.NullableOf(n)
	}
	return n, nil
}

// untyped infers the type from the keywords present.
func (a *adapter) untyped(s *jsonschema.Schema, path string) (zschema.Node, error) {
	switch {
	case len(s.Properties) > 0 || s.AdditionalProperties != nil:
		return a.object(s, path)
	case s.Items != nil || len(s.PrefixItems) > 0:
		return a.array(s, path)
	}
	return zschema.AnyValue(), nil
}

func (a *adapter) ofType(t string, s *jsonschema.Schema, path string) (zschema.Node, error) {
	switch t {
	case "boolean":
		return zschema.Bool(), nil
	case "integer":
		return number(zschema.Num().Int(), s), nil
	case "number":
		return number(zschema.Num(), s), nil
	case "string":
		return str(s, path)
	case "array":
		return a.array(s, path)
	case "object":
		return a.object(s, path)
	case "null":
		return zschema.NullValue(), nil
	}
	return nil, fmt.Errorf("%s: unknown type %q", at(path), t)
}

func number(n *zschema.Number, s *jsonschema.Schema) *zschema.Number {
	if s.Minimum != nil {
		n = n.Min(*s.Minimum)
	}
	if s.Maximum != nil {
		n = n.Max(*s.Maximum)
	}
	if s.ExclusiveMinimum != nil {
		n = n.Gt(*s.ExclusiveMinimum)
	}
	if s.ExclusiveMaximum != nil {
		n = n.Lt(*s.ExclusiveMaximum)
	}
	if s.MultipleOf != nil {
		n = n.MultipleOf(*s.MultipleOf)
	}
	return n
}

func str(s *jsonschema.Schema, path string) (zschema.Node, error) {
	n := zschema.Str()
	switch s.Format {
	case "date":
		n = n.Regex(zoq.RegExpDate)
	case "time":
		n = n.Regex(zoq.RegExpTime)
	case "date-time":
		return zschema.DateTime(), nil
	case "email":
		n = n.Email()
	case "uri", "url":
		n = n.URL()
	case "uuid":
		n = n.UUID()
	}
	if s.Pattern != "" {
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid pattern: %w", at(path), err)
		}
		n = n.Regex(re)
	}
	if s.MinLength != nil {
		n = n.Min(*s.MinLength)
	}
	if s.MaxLength != nil {
		n = n.Max(*s.MaxLength)
	}
	return n, nil
}

func enum(values []any) zschema.Node {
	names := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			break
		}
		names = append(names, s)
	}
	if len(names) == len(values) {
		return zschema.EnumOf(names...)
	}
	m := make(map[string]any, len(values))
	for _, v := range values {
		m[fmt.Sprint(v)] = v
	}
	return zschema.NativeEnumOf(m)
}

func (a *adapter) array(s *jsonschema.Schema, path string) (zschema.Node, error) {
	if len(s.PrefixItems) > 0 {
		items := make([]zschema.Node, 0, len(s.PrefixItems))
		for i, p := range s.PrefixItems {
			n, err := a.node(p, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			items = append(items, n)
		}
		return zschema.TupleOf(items...), nil
	}
	if s.Items == nil {
		return zschema.ArrayOf(zschema.AnyValue()), nil
	}
	el, err := a.node(s.Items, path+"[]")
	if err != nil {
		return nil, err
	}
	if s.UniqueItems {
		return zschema.SetOf(el), nil
	}
	return zschema.ArrayOf(el), nil
}

func (a *adapter) object(s *jsonschema.Schema, path string) (zschema.Node, error) {
	if len(s.Properties) == 0 && s.AdditionalProperties != nil && !isFalse(s.AdditionalProperties) {
		v, err := a.node(s.AdditionalProperties, path+"{}")
		if err != nil {
			return nil, err
		}
		return zschema.RecordOf(zschema.Str(), v), nil
	}

	names := a.doc.PropertyNames(s)
	props := make([]zschema.Property, 0, len(names))
	for _, name := range names {
		n, err := a.node(s.Properties[name], joinPath(path, name))
		if err != nil {
			return nil, err
		}
		if !slices.Contains(s.Required, name) {
			n = zschema.OptionalOf(n)
		}
		props = append(props, zschema.Prop(name, n))
	}
	return zschema.ObjectOf(props...), nil
}

func (a *adapter) allOf(s *jsonschema.Schema, path string) (zschema.Node, error) {
	var parts []zschema.Node
	for i, p := range s.AllOf {
		n, err := a.node(p, fmt.Sprintf("%s(allOf %d)", path, i))
		if err != nil {
			return nil, err
		}
		parts = append(parts, n)
	}

	// keywords next to allOf form one more part
	rest := *s
	rest.AllOf = nil
	rest.Default = nil
	if !isEmpty(&rest) {
		n, err := a.typed(&rest, path)
		if err != nil {
			return nil, err
		}
		parts = append([]zschema.Node{n}, parts...)
	}

	res := parts[0]
	for _, p := range parts[1:] {
		res = zschema.IntersectionOf(res, p)
	}
	return res, nil
}

// options adapts anyOf and oneOf. A single alternative next to null is
// nullable. Anything else is a union.
func (a *adapter) options(schemas []*jsonschema.Schema, path string) (zschema.Node, error) {
	var (
		opts     []zschema.Node
		nullable bool
	)
	for i, o := range schemas {
		if isNull(o) {
			nullable = true
			continue
		}
		n, err := a.node(o, fmt.Sprintf("%s(option %d)", path, i))
		if err != nil {
			return nil, err
		}
		opts = append(opts, n)
	}

	var n zschema.Node
	switch len(opts) {
	case 0:
		return zschema.NullValue(), nil
	case 1:
		n = opts[0]
	default:
		n = zschema.UnionOf(opts...)
	}
	if nullable {
		n = zschema.NullableOf(n)
	}
	return n, nil
}

// isNull reports whether s allows only null.
func isNull(s *jsonschema.Schema) bool {
	if s == nil {
		return false
	}
	if s.Type != "" {
		return s.Type == "null" && len(s.Types) == 0
	}
	return len(s.Types) == 1 && s.Types[0] == "null"
}

func at(path string) string {
	if path == "" {
		return "root"
	}
	return path
}
