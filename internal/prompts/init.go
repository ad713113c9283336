// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(output, format *string, formats []string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Prompt(": ").
				Inline(true).
				Placeholder("schemas").
				Value(output).
				Validate(requiredValidator("output directory")),
			FormatSelect(format, formats),
		),
	).WithTheme(Theme()).Run()
}
