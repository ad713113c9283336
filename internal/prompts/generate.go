// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/minodisk/zoq/internal/config"
)

// RunGenerateForm prompts for the tables to generate and, when format is
// empty, the output format.
func RunGenerateForm(selected *[]string, format *string, tables []config.Table, formats []string) error {
	var fields []huh.Field

	if len(*selected) == 0 {
		options := make([]huh.Option[string], 0, len(tables))
		for _, t := range tables {
			options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", t.Name, t.Schema), t.Name))
		}
		fields = append(fields, huh.NewMultiSelect[string]().
			Title("Tables to generate").
			Options(options...).
			Filterable(true).
			Height(10).
			Value(selected).
			Validate(func(s []string) error {
				if len(s) == 0 {
					return errors.New("select at least one table")
				}
				return nil
			}))
	}
	if *format == "" {
		fields = append(fields, FormatSelect(format, formats))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}
