// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minodisk/zoq/internal/version"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the zoq version",
		Args:  cobra.NoArgs,
		Example: `  zoq version
  zoq version --short`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Info()
			if short {
				info = version.Short()
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), info)
			return err
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version number")

	return cmd
}
