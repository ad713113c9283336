// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

// ExtractKeyOrderFromJSON parses raw JSON and extracts the order of keys for
// all "properties" objects. Paths are dotted, e.g. "properties" or
// "$defs.Address.properties". Array elements add their index, as in
// "prefixItems.0.properties".
func ExtractKeyOrderFromJSON(data []byte) (map[string][]string, error) {
	result := make(map[string][]string)

	var extract func(dec *json.Decoder, path string) error
	extract = func(dec *json.Decoder, path string) error {
		token, err := dec.Token()
		if err != nil {
			return err
		}
		delim, ok := token.(json.Delim)
		if !ok {
			return nil
		}
		switch delim {
		case '{':
			var keys []string
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return err
				}
				key, ok := keyToken.(string)
				if !ok {
					return fmt.Errorf("unexpected object key %v", keyToken)
				}
				keys = append(keys, key)
				if err := extract(dec, joinPath(path, key)); err != nil {
					return err
				}
			}
			if _, err := dec.Token(); err != nil {
				return err
			}
			if isPropertiesPath(path) {
				result[path] = keys
			}
		case '[':
			for i := 0; dec.More(); i++ {
				if err := extract(dec, joinPath(path, strconv.Itoa(i))); err != nil {
					return err
				}
			}
			if _, err := dec.Token(); err != nil {
				return err
			}
		}
		return nil
	}

	if err := extract(json.NewDecoder(bytes.NewReader(data)), ""); err != nil {
		return nil, fmt.Errorf("failed to extract key order: %w", err)
	}
	return result, nil
}

// ExtractKeyOrderFromYAML is ExtractKeyOrderFromJSON for YAML documents.
func ExtractKeyOrderFromYAML(data []byte) (map[string][]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	result := make(map[string][]string)
	var walk func(n *yaml.Node, path string)
	walk = func(n *yaml.Node, path string) {
		switch n.Kind {
		case yaml.DocumentNode:
			for _, c := range n.Content {
				walk(c, path)
			}
		case yaml.SequenceNode:
			for i, c := range n.Content {
				walk(c, joinPath(path, strconv.Itoa(i)))
			}
		case yaml.MappingNode:
			keys := make([]string, 0, len(n.Content)/2)
			for i := 0; i+1 < len(n.Content); i += 2 {
				key := n.Content[i].Value
				keys = append(keys, key)
				walk(n.Content[i+1], joinPath(path, key))
			}
			if isPropertiesPath(path) {
				result[path] = keys
			}
		case yaml.AliasNode:
			if n.Alias != nil {
				walk(n.Alias, path)
			}
		}
	}
	walk(&root, "")
	return result, nil
}

// SetPropertyOrder records the order found in keyOrder for s and every
// schema below it, following the same path scheme as the extractors.
func (d *Document) SetPropertyOrder(keyOrder map[string][]string) {
	visited := make(map[*jsonschema.Schema]bool)

	var walk func(s *jsonschema.Schema, path string)
	walkAll := func(schemas []*jsonschema.Schema, path string) {
		for i, p := range schemas {
			walk(p, joinPath(path, strconv.Itoa(i)))
		}
	}
	walk = func(s *jsonschema.Schema, path string) {
		if s == nil || visited[s] {
			return
		}
		visited[s] = true

		propsPath := joinPath(path, "properties")
		if order, ok := keyOrder[propsPath]; ok {
			d.order[s] = order
		}
		for name, p := range s.Properties {
			walk(p, propsPath+"."+name)
		}
		walk(s.Items, joinPath(path, "items"))
		walkAll(s.PrefixItems, joinPath(path, "prefixItems"))
		walk(s.AdditionalProperties, joinPath(path, "additionalProperties"))
		walkAll(s.AllOf, joinPath(path, "allOf"))
		walkAll(s.AnyOf, joinPath(path, "anyOf"))
		walkAll(s.OneOf, joinPath(path, "oneOf"))
		for name, p := range s.Defs {
			walk(p, joinPath(path, "$defs")+"."+name)
		}
		for name, p := range s.Definitions {
			walk(p, joinPath(path, "definitions")+"."+name)
		}
	}
	walk(d.Schema, "")
}

func isPropertiesPath(path string) bool {
	return path == "properties" || strings.HasSuffix(path, ".properties")
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
