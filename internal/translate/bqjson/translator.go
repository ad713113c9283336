// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package bqjson renders table schemas as BigQuery JSON schema files, the
// format accepted by `bq mk --schema` and `bq load --schema`.
package bqjson

import (
	"encoding/json"
	"fmt"

	"github.com/minodisk/zoq/bqschema"
	"github.com/minodisk/zoq/internal/translate"
)

// Translator translates table schemas to BigQuery JSON schema files.
type Translator struct{}

// FileExtension returns the file extension for BigQuery schema files.
func (t *Translator) FileExtension() string {
	return ".json"
}

// bqField is a column in the schema file. BigQuery reads a missing mode as
// NULLABLE, so the mode is always written. Fields is set for every STRUCT,
// even an empty one.
type bqField struct {
	Name   string     `json:"name"`
	Type   string     `json:"type"`
	Mode   string     `json:"mode"`
	Fields *[]bqField `json:"fields,omitempty"`
}

// Translate converts the fields to a BigQuery JSON schema document.
func (t *Translator) Translate(_ string, fields bqschema.Schema) ([]byte, error) {
	if err := fields.Validate(); err != nil {
		return nil, fmt.Errorf("invalid table schema: %w", err)
	}

	out, err := json.MarshalIndent(buildFields(fields), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal BigQuery schema: %w", err)
	}

	return append(out, '\n'), nil
}

func buildFields(fields []bqschema.Field) []bqField {
	result := make([]bqField, 0, len(fields))
	for _, f := range fields {
		bf := bqField{
			Name: f.Name,
			Type: string(f.Type),
			Mode: translate.ModeName(f.Mode),
		}
		if f.Type == bqschema.Struct {
			sub := buildFields(f.Fields)
			bf.Fields = &sub
		}
		result = append(result, bf)
	}
	return result
}
