// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// RunConvertForm asks for the values `zoq convert` is missing. Fields that
// already hold a value are not shown.
func RunConvertForm(table, format *string, formats []string) error {
	var fields []huh.Field
	if *table == "" {
		fields = append(fields, huh.NewInput().
			Title("Table name").
			Prompt(": ").
			Inline(true).
			Value(table).
			Validate(IdentifierValidator[struct{}](nil)))
	}
	if *format == "" {
		fields = append(fields, FormatSelect(format, formats))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}
