// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifierValidator(t *testing.T) {
	validate := IdentifierValidator(map[string]bool{"users": true})

	tests := []struct {
		input   string
		wantErr string
	}{
		{input: "events"},
		{input: "_staging"},
		{input: "events_2024"},
		{input: "", wantErr: "name is required"},
		{input: "2024_events", wantErr: "must start with letter or underscore"},
		{input: "user-events", wantErr: "must contain only letters, numbers, underscores"},
		{input: "users", wantErr: `"users" already exists`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := validate(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestRequiredValidator(t *testing.T) {
	assert.EqualError(t, requiredValidator("output directory")(""), "output directory is required")
	assert.NoError(t, requiredValidator("output directory")("out"))
}

func TestFprintResult(t *testing.T) {
	var buf bytes.Buffer
	FprintResult(&buf, []ResultField{
		{Label: "Table", Value: "users"},
		{Label: "Output", Value: "schemas/users.json"},
	}, "Converted")

	out := buf.String()
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "Table:")
	assert.Contains(t, out, "users\n")
	assert.Contains(t, out, "schemas/users.json")
	assert.Contains(t, out, "Converted")
}

func TestRunForms_NothingToAsk(t *testing.T) {
	table, format := "users", "yaml"
	require.NoError(t, RunConvertForm(&table, &format, []string{"yaml"}))

	selected := []string{"users"}
	require.NoError(t, RunGenerateForm(&selected, &format, nil, []string{"yaml"}))
}

func TestFormatOptions(t *testing.T) {
	options := formatOptions([]string{"bigquery-json", "yaml"})
	require.Len(t, options, 2)
	assert.Equal(t, "yaml", options[1].Value)
	assert.Equal(t, "yaml", options[1].Key)
}
