// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/minodisk/zoq/internal/commands"
	"github.com/minodisk/zoq/internal/translate"
	"github.com/minodisk/zoq/internal/translate/bqjson"
	"github.com/minodisk/zoq/internal/translate/bqyaml"
	"github.com/minodisk/zoq/internal/translate/markdown"
)

// Translators returns every output format the CLI ships with.
func Translators() translate.Register {
	translators := make(translate.Register)
	translators["bigquery-json"] = &bqjson.Translator{}
	translators["yaml"] = &bqyaml.Translator{}
	translators["markdown"] = &markdown.Translator{}
	return translators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	rootCmd := commands.NewRootCmd(Translators())
	if getenv("ZOQ_DEBUG") != "" {
		if err := rootCmd.PersistentFlags().Set("debug", "true"); err != nil {
			return err
		}
	}
	return rootCmd.ExecuteContext(ctx)
}
