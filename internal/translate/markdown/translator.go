// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/minodisk/zoq/bqschema"
	"github.com/minodisk/zoq/internal/translate"
)

//go:embed markdown.md.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"indent": indent,
	"code":   code,
}

var tmpl = template.Must(template.New("markdown.md.tmpl").Funcs(funcMap).ParseFS(tmplFS, "markdown.md.tmpl"))

// Translator renders table schemas as markdown documentation.
type Translator struct{}

// FileExtension returns the file extension for markdown files.
func (t *Translator) FileExtension() string {
	return ".md"
}

// Translate renders the columns of the table as a markdown table.
func (t *Translator) Translate(table string, fields bqschema.Schema) ([]byte, error) {
	data, err := translate.Prepare(table, fields, &resolver{})
	if err != nil {
		return nil, fmt.Errorf("failed to prepare table data: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.md.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

// indent prefixes nested column names so the hierarchy shows in the table.
func indent(depth int) string {
	return strings.Repeat("&nbsp;&nbsp;", depth)
}

// code wraps s in backticks, escaping pipes which would split the cell.
func code(s string) string {
	return "`" + strings.ReplaceAll(s, "|", `\|`) + "`"
}
