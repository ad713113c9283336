// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/minodisk/zoq/bqschema"

// TypeResolver converts BigQuery fields to target type strings and naming conventions.
// Each template-based translator implements this interface to control how columns
// are presented in its output format.
type TypeResolver interface {
	// ColumnType returns the type string of a field. It sees the nested
	// fields of STRUCT columns.
	ColumnType(f bqschema.Field) string

	// FormatTitle formats the table name for headings.
	FormatTitle(table string) string
}
