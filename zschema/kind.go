// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zschema

// Kind identifies the type of a schema node.
type Kind int

const (
	// KindOther is the zero value and tags nodes from outside the known set.
	KindOther Kind = iota

	KindBoolean
	KindNumber
	KindBigInt
	KindNaN
	KindString
	KindDate
	KindEnum
	KindNativeEnum
	KindLiteral

	KindArray
	KindTuple
	KindRecord
	KindMap
	KindSet
	KindObject

	KindOptional
	KindNullable
	KindDefault
	KindEffects

	KindFunction
	KindPromise
	KindLazy
	KindUndefined
	KindNull
	KindAny
	KindUnknown
	KindNever
	KindVoid

	KindUnion
	KindDiscriminatedUnion
	KindIntersection

	// KindTotal is the number of kinds defined.
	KindTotal = int(iota)
)

var kindNames = [...]string{
	KindOther:              "other",
	KindBoolean:            "boolean",
	KindNumber:             "number",
	KindBigInt:             "bigint",
	KindNaN:                "nan",
	KindString:             "string",
	KindDate:               "date",
	KindEnum:               "enum",
	KindNativeEnum:         "nativeEnum",
	KindLiteral:            "literal",
	KindArray:              "array",
	KindTuple:              "tuple",
	KindRecord:             "record",
	KindMap:                "map",
	KindSet:                "set",
	KindObject:             "object",
	KindOptional:           "optional",
	KindNullable:           "nullable",
	KindDefault:            "default",
	KindEffects:            "effects",
	KindFunction:           "function",
	KindPromise:            "promise",
	KindLazy:               "lazy",
	KindUndefined:          "undefined",
	KindNull:               "null",
	KindAny:                "any",
	KindUnknown:            "unknown",
	KindNever:              "never",
	KindVoid:               "void",
	KindUnion:              "union",
	KindDiscriminatedUnion: "discriminatedUnion",
	KindIntersection:       "intersection",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "other"
	}
	return kindNames[k]
}

// IsWrapper reports whether k only modifies an inner node.
func (k Kind) IsWrapper() bool {
	switch k {
	case KindOptional, KindNullable, KindDefault, KindEffects:
		return true
	default:
		return false
	}
}

// IsContainer reports whether k holds child nodes that shape the output.
func (k Kind) IsContainer() bool {
	switch k {
	case KindArray, KindTuple, KindRecord, KindMap, KindSet, KindObject:
		return true
	default:
		return false
	}
}

// IsLeaf reports whether k is a terminal scalar kind.
func (k Kind) IsLeaf() bool {
	switch k {
	case KindBoolean, KindNumber, KindBigInt, KindNaN, KindString, KindDate,
		KindEnum, KindNativeEnum, KindLiteral:
		return true
	default:
		return false
	}
}

// IsIgnorable reports whether k has no tabular representation at all.
func (k Kind) IsIgnorable() bool {
	switch k {
	case KindFunction, KindPromise, KindLazy, KindUndefined, KindNull,
		KindAny, KindUnknown, KindNever, KindVoid:
		return true
	default:
		return false
	}
}
