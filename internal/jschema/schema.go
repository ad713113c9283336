// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema loads JSON Schema documents and adapts them to zschema trees.
package jschema

import (
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// Format is the serialization of a schema file.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFromPath returns YAML for .yaml and .yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return YAML
	}
	return JSON
}

// IsFileRef returns true if ref is an external file reference.
// File refs do not start with "#".
func IsFileRef(ref string) bool {
	return ref != "" && !strings.HasPrefix(ref, "#")
}

// IsInternalRef returns true if ref points into the current document.
func IsInternalRef(ref string) bool {
	return strings.HasPrefix(ref, "#")
}

// DefName extracts the definition name from a $defs or definitions ref.
func DefName(ref string) (string, bool) {
	if name, ok := strings.CutPrefix(ref, "#/$defs/"); ok {
		return name, true
	}
	if name, ok := strings.CutPrefix(ref, "#/definitions/"); ok {
		return name, true
	}
	return "", false
}

// Document is a loaded schema together with the declared order of the
// properties of every object in it.
type Document struct {
	Schema *jsonschema.Schema
	order  map[*jsonschema.Schema][]string
}

// NewDocument wraps s. Property order falls back to sorted names.
func NewDocument(s *jsonschema.Schema) *Document {
	return &Document{Schema: s, order: make(map[*jsonschema.Schema][]string)}
}

// PropertyNames returns the property names of s in declaration order when
// it is known, and sorted otherwise.
func (d *Document) PropertyNames(s *jsonschema.Schema) []string {
	if order, ok := d.order[s]; ok {
		res := make([]string, 0, len(s.Properties))
		seen := make(map[string]bool, len(order))
		for _, key := range order {
			if _, exists := s.Properties[key]; exists && !seen[key] {
				res = append(res, key)
				seen[key] = true
			}
		}
		// properties added after loading go last
		for _, key := range sortedKeys(s.Properties) {
			if !seen[key] {
				res = append(res, key)
			}
		}
		return res
	}
	return sortedKeys(s.Properties)
}

// isFalse reports whether s is the boolean schema false, which the
// jsonschema package decodes as {"not": {}}.
func isFalse(s *jsonschema.Schema) bool {
	if s == nil || s.Not == nil {
		return false
	}
	n := *s
	n.Not = nil
	return isEmpty(&n) && isEmpty(s.Not)
}

func isEmpty(s *jsonschema.Schema) bool {
	return s.Type == "" && len(s.Types) == 0 && s.Ref == "" && len(s.Properties) == 0 &&
		s.Items == nil && len(s.PrefixItems) == 0 && s.AdditionalProperties == nil &&
		len(s.AllOf) == 0 && len(s.AnyOf) == 0 && len(s.OneOf) == 0 && s.Not == nil &&
		len(s.Enum) == 0 && s.Const == nil && s.Format == ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
