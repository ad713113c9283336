// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package markdown renders table schemas as markdown documentation.
package markdown

import (
	"strings"

	"github.com/minodisk/zoq/bqschema"
	"github.com/minodisk/zoq/internal/translate"
)

type resolver struct{}

// ColumnType spells the type the way GoogleSQL declares it, e.g.
// ARRAY<STRUCT<id INT64, tags ARRAY<STRING>>>.
func (r *resolver) ColumnType(f bqschema.Field) string {
	t := string(f.Type)
	if f.Type == bqschema.Struct {
		parts := make([]string, 0, len(f.Fields))
		for _, sub := range f.Fields {
			parts = append(parts, sub.Name+" "+r.ColumnType(sub))
		}
		t = "STRUCT<" + strings.Join(parts, ", ") + ">"
	}
	if f.Mode == bqschema.Repeated {
		t = "ARRAY<" + t + ">"
	}
	return t
}

func (r *resolver) FormatTitle(table string) string {
	return translate.ToPascalCase(table)
}
