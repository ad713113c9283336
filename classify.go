// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zoq

import (
	"reflect"

	"github.com/minodisk/zoq/zschema"
)

type class int

const (
	classUnsupported class = iota
	classWrapper
	classContainer
	classLeaf
	classIgnorable
)

// classify returns the kind of node. A missing node, including a nil
// pointer of a concrete node type, counts as undefined.
func classify(node zschema.Node) zschema.Kind {
	if node == nil {
		return zschema.KindUndefined
	}
	if v := reflect.ValueOf(node); v.Kind() == reflect.Pointer && v.IsNil() {
		return zschema.KindUndefined
	}
	return node.Kind()
}

func classOf(k zschema.Kind) class {
	switch {
	case k.IsWrapper():
		return classWrapper
	case k.IsContainer():
		return classContainer
	case k.IsLeaf():
		return classLeaf
	case k.IsIgnorable():
		return classIgnorable
	default:
		return classUnsupported
	}
}
