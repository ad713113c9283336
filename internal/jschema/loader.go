// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

// Parse decodes a schema file of the given format and records its
// property order.
func Parse(data []byte, format Format) (*Document, error) {
	var (
		schema   jsonschema.Schema
		keyOrder map[string][]string
		err      error
	)

	switch format {
	case YAML:
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		// the jsonschema package only decodes JSON
		jsonData, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to convert YAML to JSON: %w", err)
		}
		if err := json.Unmarshal(jsonData, &schema); err != nil {
			return nil, err
		}
		keyOrder, err = ExtractKeyOrderFromYAML(data)
		if err != nil {
			return nil, err
		}
	case JSON:
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, err
		}
		keyOrder, err = ExtractKeyOrderFromJSON(data)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("format %q not supported", format)
	}

	doc := NewDocument(&schema)
	doc.SetPropertyOrder(keyOrder)
	return doc, nil
}

// Loader loads schemas from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a schema file.
// The format is determined from the file extension.
func (l *Loader) LoadFile(filePath string) (*Document, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(data, FormatFromPath(filePath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return doc, nil
}

// Load reads filePath and resolves its external file refs.
func (l *Loader) Load(filePath string) (*Document, error) {
	doc, err := l.LoadFile(filePath)
	if err != nil {
		return nil, err
	}
	if err := l.ResolveRefs(doc, path.Dir(filePath)); err != nil {
		return nil, err
	}
	return doc, nil
}

// ResolveRefs resolves all external file $refs in the document in-place.
// It recursively loads referenced schemas and replaces the ref with the loaded content.
// Internal refs (starting with #) are left unchanged.
func (l *Loader) ResolveRefs(doc *Document, basePath string) error {
	for s := range Traverse(doc.Schema, nil) {
		if !IsFileRef(s.Ref) {
			continue
		}
		refPath := path.Join(basePath, s.Ref)
		loaded, err := l.LoadFile(refPath)
		if err != nil {
			return err
		}
		if err := l.ResolveRefs(loaded, path.Dir(refPath)); err != nil {
			return err
		}
		for k, v := range loaded.order {
			doc.order[k] = v
		}
		if order, ok := loaded.order[loaded.Schema]; ok {
			doc.order[s] = order
		}
		*s = *loaded.Schema
	}
	return nil
}
