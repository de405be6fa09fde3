/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package ui provides the terminals a genlist.ListUI paints on: an
// ncurses backend and a tcell backend. Both implement Terminal, which
// is genlist.Renderer plus the handful of screen and keyboard calls the
// installer picker needs.
//
// Terminals are not safe for concurrent use. All calls must come from
// the goroutine that created the terminal; ncurses in particular keeps
// process-wide C state.
package ui

import (
	"errors"

	"github.com/mikeb26/genlist/internal/genlist"
)

var (
	ErrTTYRequired        = errors.New("a terminal (TTY) is required")
	ErrFailedToInitScreen = errors.New("failed to initialize screen")
)

// Key identifies a key the picker reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	KeyResize
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyRune:
		return "rune"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyPageUp:
		return "pgup"
	case KeyPageDown:
		return "pgdn"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	case KeyResize:
		return "resize"
	}
	return "unknown"
}

// KeyEvent is one decoded keystroke. Rune is only meaningful for
// KeyRune.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// Terminal is a full-screen character grid with keyboard input.
type Terminal interface {
	genlist.Renderer

	// Size returns the grid dimensions in cells.
	Size() (width, height int)
	// Clear blanks the whole grid.
	Clear()
	// Show flushes pending writes to the physical terminal.
	Show()
	// ReadKey blocks until the next key the picker understands, or a
	// resize.
	ReadKey() KeyEvent
	// Close restores the terminal.
	Close()
}

// Theme selects how genlist styles are shown.
type Theme struct {
	// UseColors indicates whether the terminal can show the
	// foreground/background colors of a genlist.Style. Without colors,
	// styles whose background is brighter than their foreground are
	// shown in reverse video.
	UseColors bool
}

// Reverse reports whether style needs reverse video in monochrome mode.
func (t Theme) Reverse(style genlist.Style) bool {
	return brightness(style.Background()) > brightness(style.Foreground())
}

// Bold reports whether style asks for an intense foreground.
func (t Theme) Bold(style genlist.Style) bool {
	return style&genlist.FgIntensity != 0
}

// brightness ranks a console color index. The base color bits dominate
// and intensity only breaks ties.
func brightness(idx int) int {
	n := 0
	for bit := 0; bit < 3; bit++ {
		if idx&(1<<bit) != 0 {
			n += 2
		}
	}
	if idx&0x8 != 0 {
		n++
	}
	return n
}

// consoleToANSI converts a console color index (blue=1, green=2, red=4,
// intensity=8) to the ANSI order used by curses and tcell (red=1,
// green=2, blue=4). Intensity is dropped.
func consoleToANSI(idx int) int {
	ansi := 0
	if idx&0x1 != 0 {
		ansi |= 0x4
	}
	if idx&0x2 != 0 {
		ansi |= 0x2
	}
	if idx&0x4 != 0 {
		ansi |= 0x1
	}
	return ansi
}

// clipRun limits a horizontal run of count cells starting at x to a
// grid width cells wide. It returns the first column and how many cells
// remain; n <= 0 means nothing is visible.
func clipRun(x, count, width int) (start, n int) {
	start, n = x, count
	if start < 0 {
		n += start
		start = 0
	}
	if start+n > width {
		n = width - start
	}
	return start, n
}
