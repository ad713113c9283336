// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zoq

import "github.com/minodisk/zoq/zschema"

// Option configures a conversion.
type Option func(*options)

// OmitHook is called with the dotted path and kind of every dropped field.
type OmitHook func(path string, kind zschema.Kind)

type options struct {
	maxDepth int
	onOmit   OmitHook
}

func defaultOptions() *options {
	return &options{}
}

// WithMaxDepth fails the conversion with ErrMaxDepth when nodes are nested
// deeper than n. Zero, the default, means unlimited.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// WithOmitHook registers fn to observe fields dropped without error.
func WithOmitHook(fn OmitHook) Option {
	return func(o *options) {
		o.onOmit = fn
	}
}
