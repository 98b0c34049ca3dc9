// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/davetashner/tollview/internal/artifact"
	"github.com/davetashner/tollview/internal/report"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// HTMLFormatter writes the report as a self-contained HTML page. Figures are
// inlined as data URIs so the page needs no file server.
type HTMLFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string { return "html" }

// ContentType returns the MIME type of the output.
func (h *HTMLFormatter) ContentType() string { return "text/html; charset=utf-8" }

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template

	// Section text is authored in-tree; raw HTML in it is still dropped.
	markdownEngine = goldmark.New(goldmark.WithExtensions(extension.Table, extension.Strikethrough))
	markdownPolicy = bluemonday.UGCPolicy()
)

// Format writes doc to w as HTML.
func (h *HTMLFormatter) Format(doc *report.Document, w io.Writer) error {
	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
			"markdown": renderMarkdownHTML,
			"dataURI":  dataURI,
			"icon":     withIcon,
		}).Parse(htmlTemplate))
	})

	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, doc); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// renderMarkdownHTML converts a markdown block to HTML and sanitizes the
// result before it is marked trusted.
func renderMarkdownHTML(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return template.HTML(markdownPolicy.SanitizeBytes(buf.Bytes())), nil //nolint:gosec // sanitized by bluemonday
}

// dataURI inlines a present figure.
func dataURI(res *artifact.Result) template.URL {
	if res == nil || !res.Present {
		return ""
	}
	return template.URL("data:" + res.MIME + ";base64," + base64.StdEncoding.EncodeToString(res.Data)) //nolint:gosec // MIME sniffed from decoded image bytes
}
