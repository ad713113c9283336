// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zoq

import (
	"fmt"
	"reflect"

	"github.com/minodisk/zoq/bqschema"
	"github.com/minodisk/zoq/zschema"
)

// Convert returns the BigQuery columns for the properties of obj, in
// declaration order. Properties without a column representation are left
// out. The first unsupported node aborts the conversion.
func Convert(obj *zschema.Object, opts ...Option) (bqschema.Schema, error) {
	if obj == nil {
		return nil, ErrNilSchema
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	c := &converter{
		opts:   o,
		active: make(map[zschema.Node]struct{}),
	}
	c.active[obj] = struct{}{}

	fields, err := c.convertObject("", obj)
	if err != nil {
		return nil, err
	}
	return fields, nil
}

// converter holds the per-call traversal state.
type converter struct {
	opts   *options
	depth  int
	active map[zschema.Node]struct{} // composite nodes on the current path
}

func (c *converter) convertObject(path string, obj *zschema.Object) ([]bqschema.Field, error) {
	fields := make([]bqschema.Field, 0, len(obj.Shape))
	for _, p := range obj.Shape {
		f, err := c.convertField(path, p.Name, p.Node)
		if err != nil {
			return nil, err
		}
		if f != nil {
			fields = append(fields, *f)
		}
	}
	return fields, nil
}

// convertField returns the column for node named name, or nil when the node
// has no column. Each call is one level of column nesting.
func (c *converter) convertField(parent, name string, node zschema.Node) (*bqschema.Field, error) {
	c.depth++
	defer func() { c.depth-- }()
	if c.opts.maxDepth > 0 && c.depth > c.opts.maxDepth {
		return nil, fmt.Errorf("%w at %q: limit is %d", ErrMaxDepth, joinPath(parent, name), c.opts.maxDepth)
	}
	return c.convertNode(parent, name, node)
}

// convertNode dispatches on the class of node. Wrappers and array elements
// re-enter here, so they share the level of the column they describe.
func (c *converter) convertNode(parent, name string, node zschema.Node) (*bqschema.Field, error) {
	path := joinPath(parent, name)
	kind := classify(node)

	switch classOf(kind) {
	case classWrapper:
		inner, nullable, ok := unwrap(node)
		if !ok {
			return nil, unsupported(path, node)
		}
		if err := c.enter(path, node); err != nil {
			return nil, err
		}
		defer c.leave(node)

		child, err := c.convertNode(parent, name, inner)
		if err != nil || child == nil {
			return nil, err
		}
		f := *child
		f.Name = name
		if nullable && f.Mode == bqschema.Required {
			f.Mode = bqschema.Nullable
		}
		return &f, nil

	case classContainer:
		if err := c.enter(path, node); err != nil {
			return nil, err
		}
		defer c.leave(node)
		return c.expand(parent, name, node)

	case classLeaf:
		t, err := mapLeaf(path, node)
		if err != nil {
			return nil, err
		}
		if t == "" {
			c.omit(path, kind)
			return nil, nil
		}
		return &bqschema.Field{Name: name, Type: t}, nil

	case classIgnorable:
		c.omit(path, kind)
		return nil, nil

	default:
		return nil, unsupported(path, node)
	}
}

func (c *converter) enter(path string, node zschema.Node) error {
	if !reflect.TypeOf(node).Comparable() {
		return nil
	}
	if _, ok := c.active[node]; ok {
		return fmt.Errorf("%w at %q", ErrCycle, path)
	}
	c.active[node] = struct{}{}
	return nil
}

func (c *converter) leave(node zschema.Node) {
	if !reflect.TypeOf(node).Comparable() {
		return
	}
	delete(c.active, node)
}

func (c *converter) omit(path string, kind zschema.Kind) {
	if c.opts.onOmit != nil {
		c.opts.onOmit(path, kind)
	}
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
