// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles zoq project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the project configuration file.
const FileName = "zoq.yaml"

// DefaultFormat is the output format used when none is configured.
const DefaultFormat = "bigquery-json"

// Config represents the zoq.yaml project configuration file.
type Config struct {
	Version  int     `yaml:"version"`
	Output   string  `yaml:"output,omitempty"`
	Format   string  `yaml:"format,omitempty"`
	MaxDepth int     `yaml:"maxDepth,omitempty"`
	Tables   []Table `yaml:"tables,omitempty"`
}

// Table pairs a BigQuery table name with the schema file it is derived from.
// Schema paths are relative to the directory holding zoq.yaml.
type Table struct {
	Name   string `yaml:"name"`
	Schema string `yaml:"schema"`
}

// Default returns the configuration written by `zoq init`.
func Default() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Output:  "schemas",
		Format:  DefaultFormat,
	}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Table returns the table with the given name.
func (c *Config) Table(name string) (Table, bool) {
	for _, t := range c.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// Validate checks the configuration for required fields and valid values.
// When formats is non-empty the configured format must be one of them.
func (c *Config) Validate(formats ...string) error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("maxDepth must not be negative, got %d", c.MaxDepth)
	}
	if c.Format != "" && len(formats) > 0 && !slices.Contains(formats, c.Format) {
		return fmt.Errorf("unknown format %q", c.Format)
	}

	seen := make(map[string]bool, len(c.Tables))
	for i, t := range c.Tables {
		if t.Name == "" {
			return fmt.Errorf("tables[%d]: name is required", i)
		}
		if t.Schema == "" {
			return fmt.Errorf("table %q: schema is required", t.Name)
		}
		if seen[t.Name] {
			return fmt.Errorf("table %q: defined more than once", t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}
