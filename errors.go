// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zoq

import (
	"errors"
	"fmt"

	"github.com/minodisk/zoq/zschema"
)

var (
	// ErrUnsupportedKind matches every *UnsupportedKindError.
	ErrUnsupportedKind = errors.New("unsupported schema type")

	// ErrNilSchema is returned when Convert receives no object.
	ErrNilSchema = errors.New("nil object schema")

	// ErrMaxDepth is returned when nesting exceeds the WithMaxDepth limit.
	ErrMaxDepth = errors.New("maximum schema depth exceeded")

	// ErrCycle is returned when a node contains itself.
	ErrCycle = errors.New("schema contains a cycle")
)

const dataTypesURL = "https://cloud.google.com/bigquery/docs/reference/standard-sql/data-types"

// UnsupportedKindError reports a node kind that has no BigQuery equivalent
// and cannot be dropped silently.
type UnsupportedKindError struct {
	Kind zschema.Kind
	// Name is the tag of the offending node, e.g. "union".
	Name string
	// Path is the dotted field path of the node.
	Path string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("type %q at %q is not supported in zoq; translate it into a type supported by BigQuery before conversion (see %s)",
		e.Name, e.Path, dataTypesURL)
}

func (e *UnsupportedKindError) Is(target error) bool {
	return target == ErrUnsupportedKind
}

func unsupported(path string, node zschema.Node) error {
	return &UnsupportedKindError{
		Kind: classify(node),
		Name: zschema.TypeName(node),
		Path: path,
	}
}
