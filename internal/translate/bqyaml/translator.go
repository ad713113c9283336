// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package bqyaml renders table schemas as YAML documents.
package bqyaml

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/minodisk/zoq/bqschema"
)

// Translator translates table schemas to YAML.
type Translator struct{}

// FileExtension returns the file extension for YAML files.
func (t *Translator) FileExtension() string {
	return ".yaml"
}

type document struct {
	Table  string      `yaml:"table"`
	Fields []yamlField `yaml:"fields"`
}

// yamlField mirrors bqschema.Field. Fields is set for every STRUCT, even an
// empty one.
type yamlField struct {
	Name   string       `yaml:"name"`
	Type   string       `yaml:"type"`
	Mode   string       `yaml:"mode,omitempty"`
	Fields *[]yamlField `yaml:"fields,omitempty"`
}

// Translate converts the fields to a YAML document naming the table.
func (t *Translator) Translate(table string, fields bqschema.Schema) ([]byte, error) {
	if err := fields.Validate(); err != nil {
		return nil, fmt.Errorf("invalid table schema: %w", err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(document{Table: table, Fields: buildFields(fields)}); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return buf.Bytes(), nil
}

func buildFields(fields []bqschema.Field) []yamlField {
	result := make([]yamlField, 0, len(fields))
	for _, f := range fields {
		yf := yamlField{
			Name: f.Name,
			Type: string(f.Type),
			Mode: string(f.Mode),
		}
		if f.Type == bqschema.Struct {
			sub := buildFields(f.Fields)
			yf.Fields = &sub
		}
		result = append(result, yf)
	}
	return result
}
