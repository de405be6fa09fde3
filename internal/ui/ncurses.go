/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"unicode/utf8"

	"github.com/famz/SetLocale"
	"github.com/mikeb26/genlist/internal/genlist"
	gc "github.com/rthornton128/goncurses"
	"golang.org/x/term"
)

// NcursesTerminal implements Terminal on top of the ncurses root
// window.
type NcursesTerminal struct {
	scr   *gc.Window
	theme Theme
	grid  *cellGrid
	pairs map[genlist.Style]int16
	next  int16
	sigCh chan os.Signal
}

// NewNcursesTerminal initializes ncurses and takes over the screen. The
// caller must Close the terminal before writing to stdout again.
func NewNcursesTerminal() (*NcursesTerminal, error) {
	scr, err := gcInit()
	if err != nil {
		return nil, err
	}

	gc.CBreak(true)
	gc.Echo(false)
	SetCursorVisible(false)
	_ = scr.Keypad(true)
	scr.Timeout(50)

	n := &NcursesTerminal{
		scr:   scr,
		pairs: make(map[genlist.Style]int16),
		next:  1,
		sigCh: make(chan os.Signal, 1),
	}

	if gc.HasColors() && gc.StartColor() == nil {
		_ = gc.UseDefaultColors()
		n.theme.UseColors = true
	}

	maxY, maxX := scr.MaxYX()
	n.grid = newCellGrid(maxX, maxY)

	// SIGWINCH is handled by polling sigCh from ReadKey so that every
	// ncurses call stays on the caller's goroutine.
	signal.Notify(n.sigCh, syscall.SIGWINCH)

	return n, nil
}

func gcInit() (*gc.Window, error) {
	// Require a real TTY; ncurses UI is not supported otherwise
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrTTYRequired
	}

	// Reduce ncurses' ESC-key delay so pressing ESC is responsive. This
	// MUST be set before initializing ncurses via gc.Init().
	_ = os.Setenv("ESCDELAY", "100")
	// Enable UTF-8 for the frame glyphs; must similarly be set before
	// gc.Init()
	SetLocale.SetLocale(SetLocale.LC_ALL, "en_US.UTF-8")
	rootWin, err := gc.Init()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToInitScreen, err)
	}

	return rootWin, nil
}

// Theme returns the theme chosen at init; UseColors is false on
// monochrome terminals.
func (n *NcursesTerminal) Theme() Theme { return n.theme }

// SetTheme overrides the detected theme, e.g. to force monochrome.
// Turning colors on for a terminal without color support has no effect.
func (n *NcursesTerminal) SetTheme(t Theme) {
	n.theme.UseColors = t.UseColors && gc.HasColors()
}

func (n *NcursesTerminal) Close() {
	signal.Stop(n.sigCh)
	if !CursorVisible() {
		SetCursorVisible(true)
	}
	gc.End()
}

func (n *NcursesTerminal) Size() (int, int) {
	maxY, maxX := n.scr.MaxYX()
	return maxX, maxY
}

func (n *NcursesTerminal) Clear() {
	n.scr.Erase()
	n.grid.reset()
}

func (n *NcursesTerminal) Show() {
	n.scr.Refresh()
}

func (n *NcursesTerminal) FillCharacter(at genlist.Cell, glyph rune, count int) {
	start, cnt := n.grid.run(at, count)
	for x := start; x < start+cnt; x++ {
		n.grid.setGlyph(x, at.Y, glyph)
		n.paint(x, at.Y)
	}
}

func (n *NcursesTerminal) FillAttribute(at genlist.Cell, style genlist.Style, count int) {
	start, cnt := n.grid.run(at, count)
	for x := start; x < start+cnt; x++ {
		n.grid.setStyle(x, at.Y, style)
		n.paint(x, at.Y)
	}
}

func (n *NcursesTerminal) WriteText(at genlist.Cell, text []byte) {
	start, cnt := n.grid.run(at, utf8.RuneCount(text))
	x := at.X
	for _, r := range string(text) {
		if x >= start && x < start+cnt {
			n.grid.setGlyph(x, at.Y, r)
			n.paint(x, at.Y)
		}
		x++
	}
}

// paint rewrites one cell from the shadow grid.
func (n *NcursesTerminal) paint(x, y int) {
	r, style := n.grid.at(x, y)
	_ = n.scr.AttrSet(n.attr(style))
	// MovePrint with a single-rune string keeps multibyte glyphs on
	// ncurses' wide-character path.
	n.scr.MovePrint(y, x, string(r))
	_ = n.scr.AttrSet(gc.A_NORMAL)
}

// ReadKey waits for a key, translating SIGWINCH into KeyResize.
func (n *NcursesTerminal) ReadKey() KeyEvent {
	for {
		select {
		case <-n.sigCh:
			n.resize()
			return KeyEvent{Key: KeyResize}
		default:
		}

		ch := n.scr.GetChar()
		if ch == 0 {
			continue
		}
		if ch >= 0x80 && ch <= 0xFF {
			r := decodeUTF8Key(ch, n.scr.GetChar)
			return KeyEvent{Key: KeyRune, Rune: r}
		}
		ev := keyFromCurses(ch)
		if ev.Key == KeyResize {
			n.resize()
		}
		if ev.Key != KeyNone {
			return ev
		}
	}
}

// resize synchronizes ncurses' idea of the terminal size with the
// actual TTY size and resets the shadow grid to match.
func (n *NcursesTerminal) resize() {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil && gc.IsTermResized(rows, cols) {
		_ = gc.ResizeTerm(rows, cols)
	}
	maxY, maxX := n.scr.MaxYX()
	n.grid.resize(maxX, maxY)
}

func keyFromCurses(ch gc.Key) KeyEvent {
	switch ch {
	case gc.Key(27):
		return KeyEvent{Key: KeyEscape}
	case gc.KEY_UP:
		return KeyEvent{Key: KeyUp}
	case gc.KEY_DOWN:
		return KeyEvent{Key: KeyDown}
	case gc.KEY_PAGEUP:
		return KeyEvent{Key: KeyPageUp}
	case gc.KEY_PAGEDOWN:
		return KeyEvent{Key: KeyPageDown}
	case gc.KEY_HOME:
		return KeyEvent{Key: KeyHome}
	case gc.KEY_END:
		return KeyEvent{Key: KeyEnd}
	case gc.KEY_ENTER, gc.KEY_RETURN:
		return KeyEvent{Key: KeyEnter}
	case gc.KEY_RESIZE:
		return KeyEvent{Key: KeyResize}
	}

	// goncurses reports single bytes in the 0-255 range and uses larger
	// values for KEY_* constants. Bytes above 0x7f start a UTF-8
	// sequence and are decoded by ReadKey.
	if ch >= 32 && ch < 127 {
		return KeyEvent{Key: KeyRune, Rune: rune(ch)}
	}
	return KeyEvent{Key: KeyNone}
}
