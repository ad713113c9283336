// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"iter"

	"github.com/google/jsonschema-go/jsonschema"
)

// RefResolver resolves $ref strings to schemas.
// Return nil if the ref cannot be resolved.
type RefResolver func(ref string) *jsonschema.Schema

// Traverse returns an iterator over all schemas in the tree, parents first.
// It handles cycles by tracking visited schemas.
// If resolver is provided, it follows $ref links to their targets.
func Traverse(schema *jsonschema.Schema, resolver RefResolver) iter.Seq[*jsonschema.Schema] {
	return func(yield func(*jsonschema.Schema) bool) {
		visited := make(map[*jsonschema.Schema]struct{})
		traverse(schema, resolver, yield, visited)
	}
}

func traverse(s *jsonschema.Schema, resolver RefResolver, yield func(*jsonschema.Schema) bool, visited map[*jsonschema.Schema]struct{}) bool {
	if s == nil {
		return true
	}
	if _, ok := visited[s]; ok {
		return true
	}
	visited[s] = struct{}{}

	if !yield(s) {
		return false
	}

	if s.Ref != "" && resolver != nil {
		if !traverse(resolver(s.Ref), resolver, yield, visited) {
			return false
		}
	}

	for _, child := range children(s) {
		if !traverse(child, resolver, yield, visited) {
			return false
		}
	}
	return true
}

// children lists the direct subschemas of s. Map-valued keywords are
// visited in sorted key order.
func children(s *jsonschema.Schema) []*jsonschema.Schema {
	var res []*jsonschema.Schema
	for _, k := range sortedKeys(s.Properties) {
		res = append(res, s.Properties[k])
	}
	for _, k := range sortedKeys(s.PatternProperties) {
		res = append(res, s.PatternProperties[k])
	}
	res = append(res, s.AdditionalProperties, s.PropertyNames, s.UnevaluatedProperties)

	res = append(res, s.Items)
	res = append(res, s.PrefixItems...)
	res = append(res, s.AdditionalItems, s.Contains, s.UnevaluatedItems)

	res = append(res, s.AllOf...)
	res = append(res, s.AnyOf...)
	res = append(res, s.OneOf...)
	res = append(res, s.Not, s.If, s.Then, s.Else)
	for _, k := range sortedKeys(s.DependentSchemas) {
		res = append(res, s.DependentSchemas[k])
	}

	res = append(res, s.ContentSchema)
	for _, k := range sortedKeys(s.Defs) {
		res = append(res, s.Defs[k])
	}
	for _, k := range sortedKeys(s.Definitions) {
		res = append(res, s.Definitions[k])
	}
	return res
}
