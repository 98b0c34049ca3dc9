// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/davetashner/tollview/internal/report"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes the report as a Markdown document. Figures are
// linked by path rather than embedded.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string { return "markdown" }

// ContentType returns the MIME type of the output.
func (m *MarkdownFormatter) ContentType() string { return "text/markdown; charset=utf-8" }

// Format writes doc to w as Markdown.
func (m *MarkdownFormatter) Format(doc *report.Document, w io.Writer) error {
	var b strings.Builder

	h := doc.Header
	fmt.Fprintf(&b, "# %s\n", withIcon(h.Icon, h.Title))
	fmt.Fprintf(&b, "### %s\n", h.Subtitle)
	fmt.Fprintf(&b, "*%s*\n\n", h.Tagline)

	if doc.Aborted {
		if doc.Abort != nil {
			writeMarkdownBlock(&b, *doc.Abort)
		}
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("## 📌 System Snapshot\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("| --- | ---: |\n")
	for _, met := range doc.Metrics {
		fmt.Fprintf(&b, "| %s | %s |\n", withIcon(met.Icon, met.Label), met.Value)
	}
	b.WriteString("\n---\n\n")

	for _, sec := range doc.Sections {
		fmt.Fprintf(&b, "## %s\n\n", withIcon(sec.Icon, sec.Title))
		for _, blk := range sec.Blocks {
			writeMarkdownBlock(&b, blk)
		}
	}

	if doc.Footer != "" {
		fmt.Fprintf(&b, "---\n\n<sub>%s</sub>\n", doc.Footer)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeMarkdownBlock(b *strings.Builder, blk report.Block) {
	switch blk.Kind {
	case report.BlockMarkdown:
		b.WriteString(blk.Text)
		b.WriteString("\n\n")
	case report.BlockFigure:
		fmt.Fprintf(b, "![%s](%s)\n\n", blk.Figure.Name, linkDestination(blk.Figure.Path))
	case report.BlockAlert:
		text := blk.Text
		if blk.Figure != nil {
			text = fmt.Sprintf("%s (`%s`)", text, blk.Figure.Name.FileName())
		}
		fmt.Fprintf(b, "> **%s:** %s\n\n", alertTitle(blk.Level), text)
	case report.BlockColumns:
		for _, col := range blk.Columns {
			fmt.Fprintf(b, "#### %s\n\n", col.Heading)
			for _, inner := range col.Blocks {
				writeMarkdownBlock(b, inner)
			}
		}
	}
}

// linkDestination returns path as a markdown link destination. Paths with
// spaces, parentheses or angle brackets use the <...> form.
func linkDestination(path string) string {
	if !strings.ContainsAny(path, " \t()<>") {
		return path
	}
	return "<" + destEscaper.Replace(path) + ">"
}

var destEscaper = strings.NewReplacer(`\`, `\\`, "<", `\<`, ">", `\>`)

// alertTitle returns the capitalized level name, e.g. "Warning".
func alertTitle(level report.AlertLevel) string {
	s := string(level)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
