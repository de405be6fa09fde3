/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import "github.com/mikeb26/genlist/internal/genlist"

// cellGrid shadows what has been written to a screen that cannot be
// read back. Ncurses can change a cell's attribute only by rewriting
// its character, so the terminal keeps both here.
type cellGrid struct {
	width, height int
	glyphs        []rune
	styles        []genlist.Style
}

func newCellGrid(width, height int) *cellGrid {
	g := &cellGrid{}
	g.resize(width, height)
	return g
}

func (g *cellGrid) resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g.width, g.height = width, height
	g.glyphs = make([]rune, width*height)
	g.styles = make([]genlist.Style, width*height)
	g.reset()
}

func (g *cellGrid) reset() {
	for i := range g.glyphs {
		g.glyphs[i] = ' '
		g.styles[i] = 0
	}
}

// run returns the visible part of a horizontal run on row y.
func (g *cellGrid) run(at genlist.Cell, count int) (start, n int) {
	if at.Y < 0 || at.Y >= g.height {
		return 0, 0
	}
	return clipRun(at.X, count, g.width)
}

func (g *cellGrid) setGlyph(x, y int, r rune) {
	g.glyphs[y*g.width+x] = r
}

func (g *cellGrid) setStyle(x, y int, s genlist.Style) {
	g.styles[y*g.width+x] = s
}

func (g *cellGrid) at(x, y int) (rune, genlist.Style) {
	i := y*g.width + x
	return g.glyphs[i], g.styles[i]
}
