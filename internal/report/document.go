// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package report

import "github.com/davetashner/tollview/internal/artifact"

// BlockKind identifies what a Block holds.
type BlockKind string

// Block kinds.
const (
	BlockMarkdown BlockKind = "markdown"
	BlockFigure   BlockKind = "figure"
	BlockAlert    BlockKind = "alert"
	BlockColumns  BlockKind = "columns"
)

// AlertLevel is the visual style of an alert block.
type AlertLevel string

// Alert levels, from good news to bad.
const (
	LevelSuccess AlertLevel = "success"
	LevelInfo    AlertLevel = "info"
	LevelWarning AlertLevel = "warning"
	LevelError   AlertLevel = "error"
)

// FigureUnavailable is the placeholder shown for an absent chart artifact.
const FigureUnavailable = "Figure unavailable."

// Block is one unit of section content.
//
// A figure block carries a present artifact. An absent artifact is rendered
// as a warning alert that still references the artifact, so formatters and
// tests can tell which figure is missing.
type Block struct {
	Kind    BlockKind        `json:"kind"`
	Text    string           `json:"text,omitempty"`
	Level   AlertLevel       `json:"level,omitempty"`
	Figure  *artifact.Result `json:"figure,omitempty"`
	Columns []Column         `json:"columns,omitempty"`
}

// Column is one side-by-side pane within a columns block.
type Column struct {
	Heading string  `json:"heading"`
	Blocks  []Block `json:"blocks"`
}

// Metric is one labeled value in the snapshot.
type Metric struct {
	Key   string `json:"key"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// SectionDoc is a rendered section.
type SectionDoc struct {
	Name     string  `json:"name"`
	Icon     string  `json:"icon"`
	Title    string  `json:"title"`
	Expanded bool    `json:"expanded"`
	Blocks   []Block `json:"blocks"`
}

// Header is the report banner.
type Header struct {
	Icon     string `json:"icon"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Tagline  string `json:"tagline"`
}

// Document is the output of one render pass. When Aborted is set only
// Page, Header and Abort are populated.
type Document struct {
	Page     PageConfig   `json:"page"`
	Header   Header       `json:"header"`
	Aborted  bool         `json:"aborted"`
	Abort    *Block       `json:"abort,omitempty"`
	Metrics  []Metric     `json:"metrics,omitempty"`
	Sections []SectionDoc `json:"sections,omitempty"`
	Footer   string       `json:"footer,omitempty"`
}

// Markdown returns a markdown block.
func Markdown(text string) Block {
	return Block{Kind: BlockMarkdown, Text: text}
}

// Alert returns an alert block at the given level.
func Alert(level AlertLevel, text string) Block {
	return Block{Kind: BlockAlert, Level: level, Text: text}
}

// Figure returns the block for a looked-up artifact: the image when present,
// otherwise the unavailable warning.
func Figure(res artifact.Result) Block {
	r := res
	if !res.Present {
		return Block{Kind: BlockAlert, Level: LevelWarning, Text: FigureUnavailable, Figure: &r}
	}
	return Block{Kind: BlockFigure, Figure: &r}
}

// Columns returns a side-by-side block.
func Columns(cols ...Column) Block {
	return Block{Kind: BlockColumns, Columns: cols}
}

// MissingFigures returns the names of absent artifacts referenced anywhere
// in blocks, in document order.
func MissingFigures(blocks []Block) []artifact.Name {
	var out []artifact.Name
	for _, b := range blocks {
		switch b.Kind {
		case BlockAlert:
			if b.Figure != nil && !b.Figure.Present {
				out = append(out, b.Figure.Name)
			}
		case BlockColumns:
			for _, c := range b.Columns {
				out = append(out, MissingFigures(c.Blocks)...)
			}
		}
	}
	return out
}
