// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zoq

import "github.com/minodisk/zoq/zschema"

// unwrap strips one wrapper layer. nullable is set for optional and
// nullable wrappers only; ok is false when node is not a known wrapper.
func unwrap(node zschema.Node) (inner zschema.Node, nullable, ok bool) {
	switch n := node.(type) {
	case *zschema.Optional:
		return n.Inner, true, true
	case *zschema.Nullable:
		return n.Inner, true, true
	case *zschema.Default:
		return n.Inner, false, true
	case *zschema.Effects:
		return n.Inner, false, true
	default:
		return nil, false, false
	}
}
