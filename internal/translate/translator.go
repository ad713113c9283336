// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate renders BigQuery table schemas in output formats.
package translate

import (
	"fmt"
	"sort"

	"github.com/minodisk/zoq/bqschema"
)

// Translator defines the interface all format translators must implement.
type Translator interface {
	// Translate renders the fields of the named table.
	Translate(table string, fields bqschema.Schema) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".json", ".md")
	FileExtension() string
}

// Register maps format names to translators.
type Register map[string]Translator

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
