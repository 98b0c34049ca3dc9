// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/davetashner/tollview/internal/report"
)

func init() {
	RegisterFormatter(NewTextFormatter())
}

// TextFormatter writes the report for a terminal. Markdown blocks go
// through glamour; figures are listed by file name since a terminal cannot
// show them.
type TextFormatter struct {
	// WordWrap is the column markdown blocks wrap at. Zero means 80.
	WordWrap int

	mu       sync.Mutex // glamour renderers are not safe for concurrent use
	once     sync.Once
	renderer *glamour.TermRenderer
	initErr  error
}

// Compile-time interface check.
var _ Formatter = (*TextFormatter)(nil)

// NewTextFormatter returns a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string { return "text" }

// ContentType returns the MIME type of the output.
func (f *TextFormatter) ContentType() string { return "text/plain; charset=utf-8" }

// Format writes doc to w.
func (f *TextFormatter) Format(doc *report.Document, w io.Writer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.once.Do(func() {
		wrap := f.WordWrap
		if wrap <= 0 {
			wrap = 80
		}
		// A fixed style keeps output identical across terminals.
		f.renderer, f.initErr = glamour.NewTermRenderer(
			glamour.WithStandardStyle("notty"),
			glamour.WithWordWrap(wrap),
		)
	})
	if f.initErr != nil {
		return fmt.Errorf("init markdown renderer: %w", f.initErr)
	}

	bw := bufio.NewWriter(w)
	tw := &textWriter{w: bw, md: f.renderer}

	h := doc.Header
	tw.printf("%s", title(withIcon(h.Icon, h.Title), "="))
	tw.printf("%s\n", h.Subtitle)
	tw.printf("%s\n\n", colorFaint.Sprint(h.Tagline))

	if doc.Aborted {
		if doc.Abort != nil {
			tw.block(*doc.Abort, "")
		}
		return tw.flush(bw)
	}

	tw.printf("%s", title("📌 System Snapshot", "-"))
	tbl := NewTable(Column{Header: "Metric"}, Column{Header: "Value", Align: AlignRight})
	for _, m := range doc.Metrics {
		tbl.AddRow(withIcon(m.Icon, m.Label), m.Value)
	}
	if tw.err == nil {
		tw.err = tbl.Render(bw)
	}
	tw.printf("\n")

	for _, sec := range doc.Sections {
		marker := "▸"
		if sec.Expanded {
			marker = "▾"
		}
		tw.printf("%s", title(marker+" "+withIcon(sec.Icon, sec.Title), "-"))
		for _, b := range sec.Blocks {
			tw.block(b, "")
		}
		tw.printf("\n")
	}

	if doc.Footer != "" {
		tw.printf("%s\n%s\n", strings.Repeat("─", 40), colorFaint.Sprint(doc.Footer))
	}
	return tw.flush(bw)
}

// textWriter accumulates the first write error so rendering code can stay
// linear.
type textWriter struct {
	w   io.Writer
	md  *glamour.TermRenderer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) block(b report.Block, indent string) {
	switch b.Kind {
	case report.BlockMarkdown:
		if t.err != nil {
			return
		}
		out, err := t.md.Render(b.Text)
		if err != nil {
			t.err = fmt.Errorf("render markdown: %w", err)
			return
		}
		for _, line := range strings.Split(strings.Trim(out, "\n"), "\n") {
			t.printf("%s%s\n", indent, line)
		}
	case report.BlockFigure:
		fig := b.Figure
		t.printf("%s[figure] %s (%dx%d)\n", indent, fig.Name.FileName(), fig.Width, fig.Height)
	case report.BlockAlert:
		text := b.Text
		if b.Figure != nil {
			text = fmt.Sprintf("%s (%s)", text, b.Figure.Name.FileName())
		}
		t.printf("%s%s %s\n", indent, alertLabel(b.Level), text)
	case report.BlockColumns:
		for _, col := range b.Columns {
			t.printf("%s%s\n", indent, colorBold.Sprint(col.Heading))
			for _, inner := range col.Blocks {
				t.block(inner, indent+"  ")
			}
		}
	}
}

func (t *textWriter) flush(bw *bufio.Writer) error {
	if t.err != nil {
		return t.err
	}
	return bw.Flush()
}
