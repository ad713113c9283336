// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minodisk/zoq/internal/config"
	"github.com/minodisk/zoq/internal/prompts"
	"github.com/minodisk/zoq/internal/session"
)

type generateOptions struct {
	name   string
	format string
	output string
	all    bool
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate table schemas for the tables listed in zoq.yaml",
		Long: fmt.Sprintf(`Generate table schemas for the tables listed in zoq.yaml.

Each table is written to <output>/<table><ext>. A failing table does not stop
the others; all failures are reported at the end.

Available formats: %s`, strings.Join(a.translators.Available(), ", ")),
		Example: `  # Interactive mode
  zoq generate

  # Generate specific tables
  zoq generate --name users,events

  # Generate all tables as markdown into docs/
  zoq generate --all --format markdown --output docs`,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Table name(s), comma-separated")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(a.translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (default: output from zoq.yaml)")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Generate all tables")

	return cmd
}

func runGenerate(cmd *cobra.Command, a *app, opts *generateOptions) error {
	zoqCtx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	cfg := zoqCtx.Config

	if len(cfg.Tables) == 0 {
		return errors.New("no tables defined in " + config.FileName)
	}
	if opts.all && opts.name != "" {
		return errors.New("--all and --name are mutually exclusive")
	}

	var selected []string
	if opts.all {
		for _, t := range cfg.Tables {
			selected = append(selected, t.Name)
		}
	} else if opts.name != "" {
		for _, n := range strings.Split(opts.name, ",") {
			n = strings.TrimSpace(n)
			if n == "" {
				continue
			}
			if _, ok := cfg.Table(n); !ok {
				return fmt.Errorf("table %q not found in %s", n, config.FileName)
			}
			selected = append(selected, n)
		}
	}

	format := opts.format
	if format == "" {
		format = cfg.Format
	}

	if a.interactive() {
		if err := prompts.RunGenerateForm(&selected, &format, cfg.Tables, a.translators.Available()); err != nil {
			return err
		}
	}
	if len(selected) == 0 {
		return errors.New("no tables selected (use --name or --all)")
	}
	if format == "" {
		format = config.DefaultFormat
	}

	translator, err := a.translators.Get(format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			format, strings.Join(a.translators.Available(), ", "))
	}

	output := opts.output
	if output == "" {
		output = cfg.Output
	}
	if output == "" {
		output = "."
	}
	output = zoqCtx.Resolve(output)

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Generating %d table(s) as %s...\n", len(selected), format)

	var failures []string
	for _, name := range selected {
		table, _ := cfg.Table(name)

		fields, err := a.convertFile(zoqCtx.Resolve(table.Schema), cfg.MaxDepth)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			continue
		}

		data, err := translator.Translate(name, fields)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			continue
		}

		outFile := filepath.Join(output, name+translator.FileExtension())
		if err := writeFile(outFile, data); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		a.log.WithField("table", name).Debugf("wrote %d column(s)", len(fields))
		_, _ = fmt.Fprintf(out, "  %s\n", outFile)
	}

	_, _ = fmt.Fprintf(out, "\nSuccessfully generated %d table(s)\n", len(selected)-len(failures))

	if len(failures) > 0 {
		_, _ = fmt.Fprintln(out, "\nErrors:")
		for _, f := range failures {
			_, _ = fmt.Fprintf(out, "  - %s\n", f)
		}
		return fmt.Errorf("failed to generate %d table(s)", len(failures))
	}

	return nil
}
