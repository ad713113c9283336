// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches to dir for the rest of the test. An empty dir means a
// fresh temporary directory.
func chdir(t *testing.T, dir string) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	} else {
		var err error
		dir, err = filepath.Abs(dir)
		require.NoError(t, err)
	}

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(dir))
	return dir
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		dir        string // relative to testdata, empty means use t.TempDir()
		wantErr    error
		wantFormat string // only checked if wantErr is nil
	}{
		{
			name:    "not initialized",
			dir:     "",
			wantErr: ErrNotInitialized,
		},
		{
			name:    "invalid config",
			dir:     "testdata/invalid-config",
			wantErr: ErrInvalidConfig,
		},
		{
			name:       "valid",
			dir:        "testdata/valid",
			wantFormat: "yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := chdir(t, tt.dir)

			ctx, err := Load(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			zoqCtx := From(ctx)
			require.NotNil(t, zoqCtx)
			assert.Equal(t, tt.wantFormat, zoqCtx.Config.Format)
			assert.Equal(t, dir, zoqCtx.Dir)
		})
	}
}

func TestFrom_NoContextStored(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}

func TestContext_Resolve(t *testing.T) {
	c := &Context{Dir: "/project"}
	assert.Equal(t, "/project/schemas/users.json", c.Resolve("schemas/users.json"))
	assert.Equal(t, "/elsewhere/users.json", c.Resolve("/elsewhere/users.json"))
}

func TestRequireFromCommand(t *testing.T) {
	tests := []struct {
		name      string
		setupDir  string // testdata path, empty means no setup needed
		loadFirst bool   // whether to call PreRunLoad before RequireFromCommand
		wantErr   bool
	}{
		{
			name:      "not loaded",
			loadFirst: false,
			wantErr:   true,
		},
		{
			name:      "loaded",
			setupDir:  "testdata/valid",
			loadFirst: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupDir != "" {
				chdir(t, tt.setupDir)
			}

			cmd := &cobra.Command{}
			cmd.SetContext(context.Background())

			if tt.loadFirst {
				require.NoError(t, PreRunLoad(cmd, nil))
			}

			zoqCtx, err := RequireFromCommand(cmd)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			table, ok := zoqCtx.Config.Table("users")
			require.True(t, ok)
			assert.Equal(t, "schemas/users.json", table.Schema)
		})
	}
}

func TestPreRunTryLoad(t *testing.T) {
	t.Run("outside a project", func(t *testing.T) {
		chdir(t, "")
		cmd := &cobra.Command{}
		cmd.SetContext(context.Background())

		require.NoError(t, PreRunTryLoad(cmd, nil))
		assert.Nil(t, FromCommand(cmd))
	})

	t.Run("invalid project", func(t *testing.T) {
		chdir(t, "testdata/invalid-config")
		cmd := &cobra.Command{}
		cmd.SetContext(context.Background())

		assert.ErrorIs(t, PreRunTryLoad(cmd, nil), ErrInvalidConfig)
	})
}

func TestPreRunLoad_WithCommandExecution(t *testing.T) {
	chdir(t, "testdata/valid")

	var captured *Context
	rootCmd := &cobra.Command{
		Use:               "test",
		PersistentPreRunE: PreRunLoad,
	}
	rootCmd.AddCommand(&cobra.Command{
		Use: "sub",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := RequireFromCommand(cmd)
			captured = ctx
			return err
		},
	})
	rootCmd.SetArgs([]string{"sub"})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	require.NotNil(t, captured)
	assert.Equal(t, "out", captured.Config.Output)
}
