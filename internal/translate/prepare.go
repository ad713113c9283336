// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"fmt"
	"strings"

	"github.com/minodisk/zoq/bqschema"
)

// Prepare validates fields and flattens them into the data consumed by
// translator templates.
func Prepare(table string, fields bqschema.Schema, resolver TypeResolver) (*TableData, error) {
	if err := fields.Validate(); err != nil {
		return nil, fmt.Errorf("invalid table schema: %w", err)
	}

	data := &TableData{
		Name:  table,
		Title: resolver.FormatTitle(table),
	}
	fields.Walk(func(path string, f bqschema.Field) {
		data.Columns = append(data.Columns, Column{
			Path:  path,
			Type:  resolver.ColumnType(f),
			Mode:  ModeName(f.Mode),
			Depth: strings.Count(path, "."),
		})
	})
	return data, nil
}

// ModeName spells out the mode, naming the zero value REQUIRED.
func ModeName(m bqschema.Mode) string {
	if m == bqschema.Required {
		return "REQUIRED"
	}
	return string(m)
}

// ToSnakeCase converts a string to a valid snake_case identifier.
// It splits on non-alphanumeric characters, lowercases each part,
// and prefixes with underscore if the result starts with a digit.
func ToSnakeCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9')
	})

	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}

	result := strings.Join(parts, "_")
	if result != "" && result[0] >= '0' && result[0] <= '9' {
		result = "_" + result
	}
	return result
}

// ToPascalCase converts a snake_case string to PascalCase for headings.
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var sb strings.Builder
	for _, part := range parts {
		if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}

	return sb.String()
}
