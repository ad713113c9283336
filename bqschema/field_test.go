// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package bqschema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_Validate(t *testing.T) {
	tests := []struct {
		name    string
		schema  Schema
		wantErr []string
	}{
		{
			name: "valid nested",
			schema: Schema{
				{Name: "a", Type: Bool},
				{Name: "b", Type: Struct, Mode: Repeated, Fields: []Field{
					{Name: "key", Type: String},
					{Name: "value", Type: Numeric, Mode: Nullable},
				}},
				{Name: "c", Type: Struct, Fields: []Field{}},
			},
		},
		{
			name:    "empty name",
			schema:  Schema{{Type: Bool}},
			wantErr: []string{"empty name"},
		},
		{
			name:    "unknown type and mode",
			schema:  Schema{{Name: "a", Type: "FLOAT", Mode: "OPTIONAL"}},
			wantErr: []string{`unknown type "FLOAT"`, `unknown mode "OPTIONAL"`},
		},
		{
			name:    "struct without fields",
			schema:  Schema{{Name: "s", Type: Struct}},
			wantErr: []string{"s: STRUCT without fields"},
		},
		{
			name:    "scalar with fields",
			schema:  Schema{{Name: "s", Type: String, Fields: []Field{{Name: "x", Type: Bool}}}},
			wantErr: []string{"s: STRING with fields"},
		},
		{
			name: "duplicate nested names",
			schema: Schema{{Name: "s", Type: Struct, Fields: []Field{
				{Name: "x", Type: Bool},
				{Name: "x", Type: Bool},
			}}},
			wantErr: []string{`s: duplicate field "x"`},
		},
		{
			name:    "duplicate top-level names",
			schema:  Schema{{Name: "x", Type: Bool}, {Name: "x", Type: Date}},
			wantErr: []string{`duplicate field "x"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestSchema_Walk(t *testing.T) {
	s := Schema{
		{Name: "a", Type: Bool},
		{Name: "b", Type: Struct, Fields: []Field{
			{Name: "c", Type: Struct, Fields: []Field{{Name: "d", Type: Time}}},
		}},
	}

	var paths []string
	s.Walk(func(path string, _ Field) {
		paths = append(paths, path)
	})

	assert.Equal(t, []string{"a", "b", "b.c", "b.c.d"}, paths)
}

func TestField_JSON(t *testing.T) {
	f := Field{Name: "tags", Type: String, Mode: Repeated}

	out, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"tags","type":"STRING","mode":"REPEATED"}`, string(out))

	out, err = json.Marshal(Field{Name: "id", Type: Int64})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"id","type":"INT64"}`, string(out))
}
