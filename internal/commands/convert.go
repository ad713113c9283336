// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minodisk/zoq/internal/config"
	"github.com/minodisk/zoq/internal/prompts"
	"github.com/minodisk/zoq/internal/session"
)

type convertOptions struct {
	name     string
	format   string
	output   string
	maxDepth int
}

func newConvertCmd(a *app) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <schema-file>",
		Short: "Convert a JSON Schema file to a BigQuery table schema",
		Long: fmt.Sprintf(`Convert a JSON Schema file (.json, .yaml or .yml) to a BigQuery table schema.

Properties that cannot hold data (null, any, functions, recursive references)
are left out. Unions, intersections and "not" schemas are rejected.

Defaults for --format and --max-depth are read from zoq.yaml when present.
Available formats: %s`, strings.Join(a.translators.Available(), ", ")),
		Example: `  # Print the BigQuery JSON schema
  zoq convert schemas/users.schema.json

  # Write markdown documentation of the columns
  zoq convert schemas/users.schema.json --format markdown -o docs/users.md

  # Name the table explicitly
  zoq convert events.yaml --name raw_events`,
		Args:    cobra.ExactArgs(1),
		PreRunE: session.PreRunTryLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, a, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Table name (default: derived from the file name)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(a.translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "Maximum nesting depth, 0 for unlimited")

	return cmd
}

func runConvert(cmd *cobra.Command, a *app, opts *convertOptions, file string) error {
	format := opts.format
	maxDepth := opts.maxDepth
	if zoqCtx := session.FromCommand(cmd); zoqCtx != nil {
		if format == "" {
			format = zoqCtx.Config.Format
		}
		if !cmd.Flags().Changed("max-depth") {
			maxDepth = zoqCtx.Config.MaxDepth
		}
	}
	if maxDepth < 0 {
		return fmt.Errorf("--max-depth must not be negative, got %d", maxDepth)
	}

	name := opts.name
	if name == "" {
		name = tableName(file)
	}

	if format == "" && a.interactive() {
		if err := prompts.RunConvertForm(&name, &format, a.translators.Available()); err != nil {
			return err
		}
	}
	if format == "" {
		format = config.DefaultFormat
	}

	translator, err := a.translators.Get(format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			format, strings.Join(a.translators.Available(), ", "))
	}

	fields, err := a.convertFile(file, maxDepth)
	if err != nil {
		return err
	}

	data, err := translator.Translate(name, fields)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", format, err)
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := writeFile(opts.output, data); err != nil {
		return err
	}
	prompts.FprintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Table", Value: name},
		{Label: "Columns", Value: fmt.Sprint(len(fields))},
		{Label: "Output", Value: opts.output},
	}, "")
	return nil
}
