// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davetashner/tollview/internal/report"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONFormatter writes the Document as JSON. Image bytes are omitted; each
// figure keeps its name, path, presence and dimensions.
type JSONFormatter struct {
	// Compact controls whether output is a single line. When false (default),
	// output is indented with two spaces.
	Compact bool
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string { return "json" }

// ContentType returns the MIME type of the output.
func (f *JSONFormatter) ContentType() string { return "application/json" }

// Format writes doc to w as JSON followed by a newline.
func (f *JSONFormatter) Format(doc *report.Document, w io.Writer) error {
	var (
		data []byte
		err  error
	)
	if f.Compact {
		data, err = json.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
