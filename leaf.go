// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zoq

import (
	"math/big"
	"reflect"

	"github.com/minodisk/zoq/bqschema"
	"github.com/minodisk/zoq/zschema"
)

// mapLeaf returns the column type of a scalar node. An empty type with a
// nil error means the node has no column.
func mapLeaf(path string, node zschema.Node) (bqschema.FieldType, error) {
	switch n := node.(type) {
	case *zschema.Boolean:
		return bqschema.Bool, nil
	case *zschema.Number:
		if n.HasCheck(zschema.NumberCheckInt) {
			return bqschema.Int64, nil
		}
		return bqschema.Numeric, nil
	case *zschema.BigInt:
		return bqschema.BigNumeric, nil
	case *zschema.NaN:
		return bqschema.Numeric, nil
	case *zschema.String:
		return stringType(n), nil
	case *zschema.Date:
		return bqschema.Timestamp, nil
	case *zschema.Enum, *zschema.NativeEnum:
		return bqschema.String, nil
	case *zschema.Literal:
		return literalType(n.Value), nil
	default:
		return "", unsupported(path, node)
	}
}

func stringType(s *zschema.String) bqschema.FieldType {
	patterns := s.Patterns()
	for _, re := range patterns {
		if re == RegExpDate {
			return bqschema.Date
		}
	}
	for _, re := range patterns {
		if re == RegExpTime {
			return bqschema.Time
		}
	}
	return bqschema.String
}

func literalType(v any) bqschema.FieldType {
	switch v.(type) {
	case *big.Int, big.Int:
		return bqschema.BigNumeric
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return bqschema.Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return bqschema.Numeric
	case reflect.String:
		return bqschema.String
	default:
		return ""
	}
}
