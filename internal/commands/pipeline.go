// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/minodisk/zoq"
	"github.com/minodisk/zoq/bqschema"
	"github.com/minodisk/zoq/internal/jschema"
	"github.com/minodisk/zoq/internal/translate"
	"github.com/minodisk/zoq/zschema"
)

// convertFile loads the JSON Schema at file and converts it to table fields.
func (a *app) convertFile(file string, maxDepth int) (bqschema.Schema, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}

	// refs may climb above the schema's directory, so the loader is rooted
	// at the volume root
	root := filepath.VolumeName(abs) + string(filepath.Separator)
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return nil, err
	}

	doc, err := jschema.NewLoader(os.DirFS(root)).Load(filepath.ToSlash(rel))
	if err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}
	a.log.WithField("file", file).Debug("schema loaded")

	obj, err := jschema.ToNode(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if a.log.IsLevelEnabled(logrus.DebugLevel) {
		a.log.Debug("schema tree:\n" + spew.Sdump(obj))
	}

	fields, err := zoq.Convert(obj,
		zoq.WithMaxDepth(maxDepth),
		zoq.WithOmitHook(func(path string, kind zschema.Kind) {
			a.log.WithFields(logrus.Fields{"field": path, "kind": kind.String()}).Debug("field omitted")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return fields, nil
}

// tableName derives a table name from a schema file name, e.g.
// "schemas/user-events.schema.json" becomes "user_events".
func tableName(file string) string {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimSuffix(base, ".schema")
	return translate.ToSnakeCase(base)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
