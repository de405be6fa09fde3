/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package main

import (
	"unicode/utf8"

	"github.com/mikeb26/genlist/internal/genlist"
)

const (
	statusStyle    = genlist.BgWhite
	statusKeyStyle = genlist.BgWhite | genlist.FgRed | genlist.FgIntensity
)

// statusSegment represents a slice of text within a status bar and
// whether it should be highlighted as a key.
type statusSegment struct {
	text string
	bold bool
}

var pickerStatus = []statusSegment{
	{text: " ENTER", bold: true},
	{text: " = Continue   "},
	{text: "ESC", bold: true},
	{text: " = Cancel   "},
	{text: "PgUp/PgDn", bold: true},
	{text: " = Page   "},
	{text: "A-Z", bold: true},
	{text: " = Jump"},
}

// drawStatusSegments renders a status bar composed of the provided
// segments on row y, truncating at width.
func drawStatusSegments(r genlist.Renderer, y, width int, segments []statusSegment) {
	if y < 0 || width <= 0 {
		return
	}

	r.FillAttribute(genlist.Cell{X: 0, Y: y}, statusStyle, width)
	r.FillCharacter(genlist.Cell{X: 0, Y: y}, ' ', width)

	x := 0
	for _, seg := range segments {
		remaining := width - x
		if remaining <= 0 {
			break
		}
		text := seg.text
		if n := utf8.RuneCountInString(text); n > remaining {
			text = string([]rune(text)[:remaining])
		}
		n := utf8.RuneCountInString(text)

		r.WriteText(genlist.Cell{X: x, Y: y}, []byte(text))
		if seg.bold {
			r.FillAttribute(genlist.Cell{X: x, Y: y}, statusKeyStyle, n)
		}
		x += n
	}
}

// drawLine blanks row y and writes text from column x.
func drawLine(r genlist.Renderer, x, y, width int, text string) {
	r.FillAttribute(genlist.Cell{X: 0, Y: y}, 0, width)
	r.FillCharacter(genlist.Cell{X: 0, Y: y}, ' ', width)
	if text == "" || x >= width {
		return
	}
	if n := utf8.RuneCountInString(text); n > width-x {
		text = string([]rune(text)[:width-x])
	}
	r.WriteText(genlist.Cell{X: x, Y: y}, []byte(text))
}
