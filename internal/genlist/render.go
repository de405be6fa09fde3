/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package genlist

// Cell addresses one character cell of the screen grid.
type Cell struct {
	X, Y int
}

// Style is a console attribute mask: four foreground bits followed by
// four background bits.
type Style uint16

const (
	FgBlue      Style = 0x0001
	FgGreen     Style = 0x0002
	FgRed       Style = 0x0004
	FgIntensity Style = 0x0008
	BgBlue      Style = 0x0010
	BgGreen     Style = 0x0020
	BgRed       Style = 0x0040
	BgIntensity Style = 0x0080

	FgWhite = FgBlue | FgGreen | FgRed
	BgWhite = BgBlue | BgGreen | BgRed

	// StyleNormal is used for unselected rows and padding.
	StyleNormal = FgWhite | BgBlue
	// StyleSelected is StyleNormal inverted and marks the current row.
	StyleSelected = FgBlue | BgWhite
)

// Foreground returns the foreground bits as a 0-15 color index.
func (s Style) Foreground() int { return int(s & 0x000f) }

// Background returns the background bits as a 0-15 color index.
func (s Style) Background() int { return int(s&0x00f0) >> 4 }

// Frame and scroll marker glyphs.
const (
	GlyphTopLeft     rune = '┌'
	GlyphTopRight    rune = '┐'
	GlyphBottomLeft  rune = '└'
	GlyphBottomRight rune = '┘'
	GlyphHorizontal  rune = '─'
	GlyphVertical    rune = '│'
	GlyphMoreAbove   rune = '↑'
	GlyphMoreBelow   rune = '↓'
	GlyphTrack       rune = '│'
	GlyphThumb       rune = '█'
)

// Renderer is the screen a ListUI paints on. All writes are
// fire-and-forget and address a fixed grid by (column, row); a run that
// would pass the right edge of the grid is clipped.
//
//go:generate mockgen --build_flags=--mod=mod -destination=renderer_mock.go -package=$GOPACKAGE -self_package=github.com/mikeb26/genlist/internal/genlist github.com/mikeb26/genlist/internal/genlist Renderer
type Renderer interface {
	// FillCharacter writes glyph into count consecutive cells starting
	// at the given cell, leaving attributes alone.
	FillCharacter(at Cell, glyph rune, count int)
	// FillAttribute sets the attribute of count consecutive cells
	// starting at the given cell, leaving characters alone.
	FillAttribute(at Cell, style Style, count int)
	// WriteText writes text one byte-sized cell at a time starting at
	// the given cell, leaving attributes alone.
	WriteText(at Cell, text []byte)
}
