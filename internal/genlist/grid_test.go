/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package genlist

import "strings"

// gridRenderer is an in-memory Renderer that records every cell and
// counts text writes so tests can check how often rows were painted.
type gridRenderer struct {
	w, h   int
	glyphs [][]rune
	styles [][]Style
	writes int
}

func newGridRenderer(w, h int) *gridRenderer {
	g := &gridRenderer{w: w, h: h}
	g.glyphs = make([][]rune, h)
	g.styles = make([][]Style, h)
	for y := 0; y < h; y++ {
		g.glyphs[y] = []rune(strings.Repeat(".", w))
		g.styles[y] = make([]Style, w)
	}
	return g
}

func (g *gridRenderer) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

func (g *gridRenderer) FillCharacter(at Cell, glyph rune, count int) {
	for i := 0; i < count; i++ {
		if g.inside(at.X+i, at.Y) {
			g.glyphs[at.Y][at.X+i] = glyph
		}
	}
}

func (g *gridRenderer) FillAttribute(at Cell, style Style, count int) {
	for i := 0; i < count; i++ {
		if g.inside(at.X+i, at.Y) {
			g.styles[at.Y][at.X+i] = style
		}
	}
}

func (g *gridRenderer) WriteText(at Cell, text []byte) {
	g.writes++
	for i, b := range text {
		if g.inside(at.X+i, at.Y) {
			g.glyphs[at.Y][at.X+i] = rune(b)
		}
	}
}

func (g *gridRenderer) row(y int) string {
	return string(g.glyphs[y])
}

func (g *gridRenderer) glyph(x, y int) rune {
	return g.glyphs[y][x]
}

func (g *gridRenderer) style(x, y int) Style {
	return g.styles[y][x]
}
