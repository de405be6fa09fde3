/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mikeb26/genlist/internal/genlist"
)

// TcellTerminal implements Terminal on a tcell.Screen. Unlike ncurses,
// tcell can read a cell back, so attribute and character fills update
// one half of the cell in place.
type TcellTerminal struct {
	screen tcell.Screen
	theme  Theme
}

// NewTcellTerminal takes ownership of screen and initializes it. A nil
// screen opens the controlling terminal.
func NewTcellTerminal(screen tcell.Screen, theme Theme) (*TcellTerminal, error) {
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToInitScreen, err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToInitScreen, err)
	}
	screen.HideCursor()
	screen.Clear()

	return &TcellTerminal{screen: screen, theme: theme}, nil
}

// Screen returns the underlying tcell screen.
func (t *TcellTerminal) Screen() tcell.Screen { return t.screen }

func (t *TcellTerminal) Theme() Theme { return t.theme }

func (t *TcellTerminal) Close() {
	t.screen.Fini()
}

func (t *TcellTerminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *TcellTerminal) Clear() {
	t.screen.Clear()
}

func (t *TcellTerminal) Show() {
	t.screen.Show()
}

func (t *TcellTerminal) FillCharacter(at genlist.Cell, glyph rune, count int) {
	start, n := t.run(at, count)
	for x := start; x < start+n; x++ {
		_, _, st, _ := t.screen.GetContent(x, at.Y)
		t.screen.SetContent(x, at.Y, glyph, nil, st)
	}
}

func (t *TcellTerminal) FillAttribute(at genlist.Cell, style genlist.Style, count int) {
	st := t.Style(style)
	start, n := t.run(at, count)
	for x := start; x < start+n; x++ {
		mainc, combc, _, _ := t.screen.GetContent(x, at.Y)
		t.screen.SetContent(x, at.Y, mainc, combc, st)
	}
}

func (t *TcellTerminal) WriteText(at genlist.Cell, text []byte) {
	w, _ := t.screen.Size()
	x := at.X
	for _, r := range string(text) {
		if x >= w {
			break
		}
		if x >= 0 {
			_, _, st, _ := t.screen.GetContent(x, at.Y)
			t.screen.SetContent(x, at.Y, r, nil, st)
		}
		x++
	}
}

func (t *TcellTerminal) run(at genlist.Cell, count int) (int, int) {
	w, h := t.screen.Size()
	if at.Y < 0 || at.Y >= h {
		return 0, 0
	}
	return clipRun(at.X, count, w)
}

// Style converts a genlist style to the tcell style it is shown with.
func (t *TcellTerminal) Style(style genlist.Style) tcell.Style {
	if style == 0 {
		return tcell.StyleDefault
	}
	if !t.theme.UseColors {
		return tcell.StyleDefault.
			Reverse(t.theme.Reverse(style)).
			Bold(t.theme.Bold(style))
	}
	return tcell.StyleDefault.
		Foreground(paletteColor(style.Foreground())).
		Background(paletteColor(style.Background()))
}

func paletteColor(idx int) tcell.Color {
	ansi := consoleToANSI(idx)
	if idx&0x8 != 0 {
		ansi += 8
	}
	return tcell.PaletteColor(ansi)
}

// ReadKey blocks on the tcell event queue. A finished screen (nil event)
// reads as Escape so callers unwind.
func (t *TcellTerminal) ReadKey() KeyEvent {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return KeyEvent{Key: KeyEscape}
		case *tcell.EventResize:
			t.screen.Sync()
			return KeyEvent{Key: KeyResize}
		case *tcell.EventKey:
			if k := keyFromTcell(ev.Key(), ev.Rune()); k.Key != KeyNone {
				return k
			}
		}
	}
}

func keyFromTcell(k tcell.Key, r rune) KeyEvent {
	switch k {
	case tcell.KeyUp:
		return KeyEvent{Key: KeyUp}
	case tcell.KeyDown:
		return KeyEvent{Key: KeyDown}
	case tcell.KeyPgUp:
		return KeyEvent{Key: KeyPageUp}
	case tcell.KeyPgDn:
		return KeyEvent{Key: KeyPageDown}
	case tcell.KeyHome:
		return KeyEvent{Key: KeyHome}
	case tcell.KeyEnd:
		return KeyEvent{Key: KeyEnd}
	case tcell.KeyEnter:
		return KeyEvent{Key: KeyEnter}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyEvent{Key: KeyEscape}
	case tcell.KeyRune:
		if r >= ' ' {
			return KeyEvent{Key: KeyRune, Rune: r}
		}
	}
	return KeyEvent{Key: KeyNone}
}
