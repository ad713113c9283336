// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/minodisk/zoq/internal/prompts"
	"github.com/minodisk/zoq/internal/translate"
)

// app is the state shared by every command of one root.
type app struct {
	translators translate.Register
	log         *logrus.Logger
	debug       bool

	// interactive reports whether forms may be shown.
	interactive func() bool
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	return newRootCmd(&app{
		translators: translators,
		log:         logrus.New(),
		interactive: prompts.Interactive,
	})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zoq",
		Short: "Derive BigQuery table schemas from JSON Schema",
		Long: `zoq converts schema definitions into BigQuery table schemas so column
types are declared once, next to the validation rules.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setupLog(cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "turn on debug logging")

	rootCmd.AddCommand(
		newConvertCmd(a),
		newGenerateCmd(a),
		newInitCmd(a),
		newFormatsCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

func (a *app) setupLog(w io.Writer) {
	a.log.SetOutput(w)
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if a.debug {
		a.log.SetLevel(logrus.DebugLevel)
	} else {
		a.log.SetLevel(logrus.InfoLevel)
	}
}
