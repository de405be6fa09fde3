/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"testing"

	"github.com/mikeb26/genlist/internal/genlist"
	gc "github.com/rthornton128/goncurses"
)

// These tests focus on the pure-Go parts of NcursesTerminal that do not
// require an actual ncurses screen. Full interaction tests would require
// a real TTY and are better suited for integration tests.

func TestKeyFromCurses(t *testing.T) {
	cases := []struct {
		in   gc.Key
		want KeyEvent
	}{
		{gc.Key(27), KeyEvent{Key: KeyEscape}},
		{gc.KEY_UP, KeyEvent{Key: KeyUp}},
		{gc.KEY_DOWN, KeyEvent{Key: KeyDown}},
		{gc.KEY_PAGEUP, KeyEvent{Key: KeyPageUp}},
		{gc.KEY_PAGEDOWN, KeyEvent{Key: KeyPageDown}},
		{gc.KEY_HOME, KeyEvent{Key: KeyHome}},
		{gc.KEY_END, KeyEvent{Key: KeyEnd}},
		{gc.KEY_ENTER, KeyEvent{Key: KeyEnter}},
		{gc.KEY_RETURN, KeyEvent{Key: KeyEnter}},
		{gc.KEY_RESIZE, KeyEvent{Key: KeyResize}},
		{gc.Key('g'), KeyEvent{Key: KeyRune, Rune: 'g'}},
		{gc.Key(' '), KeyEvent{Key: KeyRune, Rune: ' '}},
		{gc.Key(1), KeyEvent{Key: KeyNone}},
		{gc.KEY_F1, KeyEvent{Key: KeyNone}},
	}
	for _, tc := range cases {
		if got := keyFromCurses(tc.in); got != tc.want {
			t.Fatalf("keyFromCurses(%d): expected %+v, got %+v", tc.in, tc.want, got)
		}
	}
}

func TestMonoAttr(t *testing.T) {
	theme := Theme{}

	if a := monoAttr(theme, genlist.StyleSelected); a&gc.A_REVERSE == 0 {
		t.Fatalf("expected selected style to use reverse video")
	}
	if a := monoAttr(theme, genlist.StyleNormal); a&gc.A_REVERSE != 0 {
		t.Fatalf("expected normal style without reverse video")
	}
	if a := monoAttr(theme, genlist.StyleNormal|genlist.FgIntensity); a&gc.A_BOLD == 0 {
		t.Fatalf("expected intense foreground to be bold")
	}
}

func TestCellGridClipsRuns(t *testing.T) {
	g := newCellGrid(4, 2)

	if start, n := g.run(genlist.Cell{X: 2, Y: 1}, 5); start != 2 || n != 2 {
		t.Fatalf("expected run (2,2), got (%d,%d)", start, n)
	}
	if _, n := g.run(genlist.Cell{X: 0, Y: 2}, 1); n > 0 {
		t.Fatalf("expected nothing visible below the grid, got %d", n)
	}

	g.setGlyph(3, 1, 'x')
	g.setStyle(3, 1, genlist.StyleSelected)
	if r, s := g.at(3, 1); r != 'x' || s != genlist.StyleSelected {
		t.Fatalf("unexpected cell %q/%#x", r, s)
	}

	g.resize(2, 2)
	if r, s := g.at(1, 1); r != ' ' || s != 0 {
		t.Fatalf("expected blank cell after resize, got %q/%#x", r, s)
	}
}

func TestDecodeUTF8Key(t *testing.T) {
	feed := func(b ...byte) func() gc.Key {
		return func() gc.Key {
			if len(b) == 0 {
				return 0
			}
			k := gc.Key(b[0])
			b = b[1:]
			return k
		}
	}

	if r := decodeUTF8Key(gc.Key('a'), feed()); r != 'a' {
		t.Fatalf("expected 'a', got %q", r)
	}
	// "é" is 0xC3 0xA9
	if r := decodeUTF8Key(gc.Key(0xC3), feed(0xA9)); r != 'é' {
		t.Fatalf("expected 'é', got %q", r)
	}
	// "日" is 0xE6 0x97 0xA5
	if r := decodeUTF8Key(gc.Key(0xE6), feed(0x97, 0xA5)); r != '日' {
		t.Fatalf("expected '日', got %q", r)
	}
	if r := decodeUTF8Key(gc.Key(0xC3), feed('x')); r != rune(0xC3) {
		t.Fatalf("expected lead byte for malformed sequence, got %q", r)
	}
}
