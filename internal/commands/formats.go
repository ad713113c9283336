// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFormatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range a.translators.Available() {
				t, _ := a.translators.Get(name)
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", name, t.FileExtension()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
