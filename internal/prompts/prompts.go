// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package prompts provides interactive terminal prompts for CLI commands.
package prompts

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme returns the shared huh theme used across all CLI forms.
func Theme() *huh.Theme {
	theme := huh.ThemeBase16()
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n").MarginBottom(1)
	theme.Form.Base = theme.Form.Base.MarginTop(1)
	theme.Group.Base = theme.Group.Base.MarginTop(1)
	theme.Focused.Title = theme.Focused.Title.Foreground(lipgloss.Color("#f9ca24"))
	theme.Blurred.Title = theme.Blurred.Title.Foreground(lipgloss.Color("#bababa"))
	return theme
}

// Interactive reports whether forms can be shown, that is whether both
// stdin and stdout are terminals.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// ResultField is a label-value pair for FprintResult.
type ResultField struct {
	Label string
	Value string
}

// FprintResult writes a styled summary with green checkmarks and gray labels
// to w.
func FprintResult(w io.Writer, fields []ResultField, successMsg string) {
	success := lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
	check := success.Render("✓")

	_, _ = fmt.Fprintln(w)
	for _, f := range fields {
		_, _ = fmt.Fprintf(w, "%s %s %s\n", check, label.Render(f.Label+":"), f.Value)
	}

	if successMsg != "" {
		_, _ = fmt.Fprintln(w, success.Render("\n"+successMsg))
	}
}

// IdentifierValidator accepts BigQuery table and column names: letters,
// digits and underscores, not starting with a digit.
func IdentifierValidator[T any](existing map[string]T) func(string) error {
	return func(s string) error {
		if s == "" {
			return errors.New("name is required")
		}
		for i, r := range s {
			if i == 0 && !unicode.IsLetter(r) && r != '_' {
				return errors.New("must start with letter or underscore")
			}
			if i > 0 && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				return errors.New("must contain only letters, numbers, underscores")
			}
		}
		if _, exists := existing[s]; exists {
			return fmt.Errorf("%q already exists", s)
		}
		return nil
	}
}

func requiredValidator(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func formatOptions(formats []string) []huh.Option[string] {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f)
	}
	return options
}

// FormatSelect returns a select field for choosing the output format.
func FormatSelect(value *string, formats []string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Output format").
		Options(formatOptions(formats)...).
		Value(value)
}
