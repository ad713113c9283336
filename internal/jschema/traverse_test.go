// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"os"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseJSON(t *testing.T, data string) *Document {
	t.Helper()
	doc, err := Parse([]byte(data), JSON)
	require.NoError(t, err)
	return doc
}

func TestTraverse_SimpleSchema(t *testing.T) {
	doc, err := NewLoader(os.DirFS("testdata")).LoadFile("simple.yaml")
	require.NoError(t, err)

	var types []string
	for s := range Traverse(doc.Schema, nil) {
		types = append(types, s.Type)
	}

	// parents first, properties sorted
	assert.Equal(t, []string{"object", "integer", "string"}, types)
}

func TestTraverse_Combinators(t *testing.T) {
	doc := parseJSON(t, `{
		"allOf": [{"type": "object"}, {"properties": {"a": {"type": "string"}}}],
		"anyOf": [{"type": "string"}, {"type": "null"}],
		"not": {"type": "boolean"}
	}`)

	var count int
	for range Traverse(doc.Schema, nil) {
		count++
	}
	// root + 2 allOf + property a + 2 anyOf + not
	assert.Equal(t, 7, count)
}

func TestTraverse_FollowsRefs(t *testing.T) {
	doc := parseJSON(t, `{
		"type": "object",
		"properties": {"self": {"$ref": "#"}}
	}`)
	resolver := func(ref string) *jsonschema.Schema {
		if ref == "#" {
			return doc.Schema
		}
		return nil
	}

	var count int
	for range Traverse(doc.Schema, resolver) {
		count++
	}
	// the cycle back to the root is visited once
	assert.Equal(t, 2, count)
}

func TestTraverse_EarlyStop(t *testing.T) {
	doc := parseJSON(t, `{"properties": {"a": {}, "b": {}, "c": {}}}`)

	var count int
	for range Traverse(doc.Schema, nil) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}
