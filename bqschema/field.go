// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package bqschema describes BigQuery table columns.
package bqschema

import (
	"errors"
	"fmt"
)

// FieldType is a BigQuery column type.
type FieldType string

const (
	Bool       FieldType = "BOOL"
	Int64      FieldType = "INT64"
	Numeric    FieldType = "NUMERIC"
	BigNumeric FieldType = "BIGNUMERIC"
	String     FieldType = "STRING"
	Date       FieldType = "DATE"
	Time       FieldType = "TIME"
	Timestamp  FieldType = "TIMESTAMP"
	Struct     FieldType = "STRUCT"
)

// Valid reports whether t is one of the known column types.
func (t FieldType) Valid() bool {
	switch t {
	case Bool, Int64, Numeric, BigNumeric, String, Date, Time, Timestamp, Struct:
		return true
	default:
		return false
	}
}

// Mode is the column mode. The zero value means required and singular.
type Mode string

const (
	Required Mode = ""
	Nullable Mode = "NULLABLE"
	Repeated Mode = "REPEATED"
)

// Field is a single column. Fields is non-nil exactly when Type is Struct.
type Field struct {
	Name   string    `json:"name" yaml:"name"`
	Type   FieldType `json:"type" yaml:"type"`
	Mode   Mode      `json:"mode,omitempty" yaml:"mode,omitempty"`
	Fields []Field   `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Schema is an ordered list of columns.
type Schema []Field

// Validate checks every field recursively and reports all violations.
func (s Schema) Validate() error {
	var errs []error
	s.Walk(func(path string, f Field) {
		if f.Name == "" {
			errs = append(errs, fmt.Errorf("%s: empty name", path))
		}
		if !f.Type.Valid() {
			errs = append(errs, fmt.Errorf("%s: unknown type %q", path, f.Type))
		}
		switch f.Mode {
		case Required, Nullable, Repeated:
		default:
			errs = append(errs, fmt.Errorf("%s: unknown mode %q", path, f.Mode))
		}
		if f.Type == Struct && f.Fields == nil {
			errs = append(errs, fmt.Errorf("%s: STRUCT without fields", path))
		}
		if f.Type != Struct && f.Fields != nil {
			errs = append(errs, fmt.Errorf("%s: %s with fields", path, f.Type))
		}
		if err := uniqueNames(f.Fields); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
	})
	if err := uniqueNames(s); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Walk calls fn for every field in depth-first order with its dotted path.
func (s Schema) Walk(fn func(path string, f Field)) {
	walk(s, "", fn)
}

func walk(fields []Field, prefix string, fn func(string, Field)) {
	for _, f := range fields {
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}
		fn(path, f)
		walk(f.Fields, path, fn)
	}
}

func uniqueNames(fields []Field) error {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("duplicate field %q", f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}
