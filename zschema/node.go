// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package zschema models composable validation schemas as a tree of typed
// nodes. Nodes are built once and only read afterwards.
package zschema

// Node is one element of a schema tree.
type Node interface {
	Kind() Kind
}

// TypeName returns the tag identifying the kind of n. Opaque nodes report
// their own name.
func TypeName(n Node) string {
	if n == nil {
		return KindUndefined.String()
	}
	if o, ok := n.(*Opaque); ok && o != nil && o.Name != "" {
		return o.Name
	}
	return n.Kind().String()
}
