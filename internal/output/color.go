// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package output

import (
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/davetashner/tollview/internal/report"
)

// Shared color printers for the text formatter.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorCyan   = color.New(color.FgCyan)
	colorBold   = color.New(color.Bold)
	colorFaint  = color.New(color.Faint)
)

// alertLabel returns the fixed-width tag printed before an alert.
func alertLabel(level report.AlertLevel) string {
	label := strings.ToUpper(string(level))
	switch level {
	case report.LevelSuccess:
		return colorGreen.Sprintf("%-7s", label)
	case report.LevelInfo:
		return colorCyan.Sprintf("%-7s", label)
	case report.LevelWarning:
		return colorYellow.Sprintf("%-7s", label)
	case report.LevelError:
		return colorRed.Sprintf("%-7s", label)
	default:
		return label
	}
}

// title renders a bold heading underlined with ch.
func title(text string, ch string) string {
	return colorBold.Sprint(text) + "\n" + strings.Repeat(ch, runewidth.StringWidth(text)) + "\n"
}
