// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// TableData is the complete input passed to a translator template.
type TableData struct {
	Name    string   // table name as given
	Title   string   // formatted table name, e.g. "UserEvents"
	Columns []Column // depth-first, parents before their children
}

// Column is a single field of the table, flattened.
type Column struct {
	Path  string // dotted path from the table root, e.g. "address.city"
	Type  string // resolved target type string
	Mode  string // "REQUIRED", "NULLABLE" or "REPEATED"
	Depth int    // 0 for top-level columns
}
