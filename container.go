// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zoq

import (
	"strconv"

	"github.com/minodisk/zoq/bqschema"
	"github.com/minodisk/zoq/zschema"
)

// expand converts a composite node into a REPEATED or STRUCT column.
func (c *converter) expand(parent, name string, node zschema.Node) (*bqschema.Field, error) {
	path := joinPath(parent, name)

	switch n := node.(type) {
	case *zschema.Array:
		return c.repeated(parent, name, n.Element)
	case *zschema.Set:
		return c.repeated(parent, name, n.Element)
	case *zschema.Tuple:
		fields := make([]bqschema.Field, 0, len(n.Items))
		for i, item := range n.Items {
			f, err := c.convertField(path, strconv.Itoa(i), item)
			if err != nil {
				return nil, err
			}
			if f != nil {
				fields = append(fields, *f)
			}
		}
		return &bqschema.Field{Name: name, Type: bqschema.Struct, Fields: fields}, nil
	case *zschema.Object:
		fields, err := c.convertObject(path, n)
		if err != nil {
			return nil, err
		}
		return &bqschema.Field{Name: name, Type: bqschema.Struct, Fields: fields}, nil
	case *zschema.Record:
		return c.keyValue(path, name, n.Key, n.Value)
	case *zschema.Map:
		return c.keyValue(path, name, n.Key, n.Value)
	default:
		return nil, unsupported(path, node)
	}
}

// repeated converts element under name and forces REPEATED mode on it.
func (c *converter) repeated(parent, name string, element zschema.Node) (*bqschema.Field, error) {
	child, err := c.convertNode(parent, name, element)
	if err != nil || child == nil {
		return nil, err
	}
	f := *child
	f.Name = name
	f.Mode = bqschema.Repeated
	return &f, nil
}

// keyValue builds a repeated STRUCT of key and value entries. Entries whose
// node has no column are left out.
func (c *converter) keyValue(path, name string, key, value zschema.Node) (*bqschema.Field, error) {
	fields := make([]bqschema.Field, 0, 2)
	for _, e := range []struct {
		name string
		node zschema.Node
	}{
		{"key", key},
		{"value", value},
	} {
		f, err := c.convertField(path, e.name, e.node)
		if err != nil {
			return nil, err
		}
		if f != nil {
			fields = append(fields, *f)
		}
	}
	return &bqschema.Field{
		Name:   name,
		Type:   bqschema.Struct,
		Mode:   bqschema.Repeated,
		Fields: fields,
	}, nil
}
