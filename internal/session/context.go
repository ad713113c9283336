// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/minodisk/zoq/internal/config"
)

var (
	// ErrNotInitialized indicates no zoq.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a zoq project (zoq.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the loaded project configuration.
type Context struct {
	// Config is the validated project configuration.
	Config *config.Config

	// Dir is the directory holding zoq.yaml.
	Dir string
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the zoq Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, config.FileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	zoqCtx := &Context{
		Config: cfg,
		Dir:    cwd,
	}

	return context.WithValue(ctx, contextKey{}, zoqCtx), nil
}

// From extracts the zoq Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if zoqCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return zoqCtx
	}
	return nil
}

// Resolve makes a path from the config absolute against the project directory.
func (c *Context) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir, path)
}
