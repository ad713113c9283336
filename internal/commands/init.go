// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/minodisk/zoq/internal/config"
	"github.com/minodisk/zoq/internal/prompts"
)

type initOptions struct {
	output         string
	format         string
	nonInteractive bool
}

func newInitCmd(a *app) *cobra.Command {
	defaults := config.Default()
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new zoq project",
		Long: `Initialize a new zoq project with a zoq.yaml configuration file.
Tables are added to the file by hand.`,
		Example: `  # Interactive mode
  zoq init

  # Non-interactive
  zoq init --format markdown --output docs --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", defaults.Output, "Output directory for generated schemas")
	cmd.Flags().StringVarP(&opts.format, "format", "f", defaults.Format, "Default output format")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, a *app, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfgPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New(config.FileName + " already exists; project already initialized")
	}

	if !opts.nonInteractive && a.interactive() {
		if err := prompts.RunInitForm(&opts.output, &opts.format, a.translators.Available()); err != nil {
			return err
		}
	}

	cfg := config.Default()
	cfg.Output = opts.output
	cfg.Format = opts.format

	if err := cfg.Validate(a.translators.Available()...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.FprintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: config.FileName},
		{Label: "Output", Value: cfg.Output},
		{Label: "Format", Value: cfg.Format},
	}, "Initialization completed")
	return nil
}
