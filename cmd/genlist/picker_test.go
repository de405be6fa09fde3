/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/mikeb26/genlist/internal/genlist"
	"github.com/mikeb26/genlist/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedTerminal paints on a tcell simulation screen and replays a
// fixed key sequence. Once the script runs out it presses Escape.
type scriptedTerminal struct {
	*ui.TcellTerminal
	keys []ui.KeyEvent
}

func (s *scriptedTerminal) ReadKey() ui.KeyEvent {
	if len(s.keys) == 0 {
		return ui.KeyEvent{Key: ui.KeyEscape}
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k
}

func newScriptedTerminal(t *testing.T, w, h int, keys ...ui.KeyEvent) *scriptedTerminal {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term, err := ui.NewTcellTerminal(screen, ui.Theme{UseColors: true})
	require.NoError(t, err)
	screen.SetSize(w, h)
	t.Cleanup(term.Close)
	return &scriptedTerminal{TcellTerminal: term, keys: keys}
}

func (s *scriptedTerminal) row(y int) string {
	w, _ := s.Size()
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		r, _, _, _ := s.Screen().GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func key(k ui.Key) ui.KeyEvent { return ui.KeyEvent{Key: k} }

func runeKey(r rune) ui.KeyEvent { return ui.KeyEvent{Key: ui.KeyRune, Rune: r} }

func testItems(labels ...string) []Item {
	items := make([]Item, 0, len(labels))
	for _, label := range labels {
		items = append(items, Item{Label: label, Info: "info " + label})
	}
	return items
}

func newTestPickerList(t *testing.T, labels ...string) *genlist.List {
	t.Helper()
	l, err := buildList(testItems(labels...))
	require.NoError(t, err)
	return l
}

var planets = []string{"Mercury", "Venus", "Earth", "Mars", "Jupiter",
	"Saturn", "Uranus", "Neptune", "Pluto"}

// A 40x10 screen with margin 2 leaves a frame from row 2 to row 7 with
// four interior rows.
const testW, testH = 40, 10

func TestPickerConfirm(t *testing.T) {
	term := newScriptedTerminal(t, testW, testH, key(ui.KeyDown),
		key(ui.KeyDown), key(ui.KeyEnter))
	l := newTestPickerList(t, planets...)

	e, err := runPicker(term, l, pickerOptions{title: "Pick one", start: -1,
		margin: 2})
	require.NoError(t, err)
	assert.Equal(t, "Earth", e.Label())

	item, ok := entryItem(e)
	require.True(t, ok)
	assert.Equal(t, "info Earth", item.Info)
}

func TestPickerCancelRestoresSelection(t *testing.T) {
	term := newScriptedTerminal(t, testW, testH, key(ui.KeyPageDown),
		key(ui.KeyEscape))
	l := newTestPickerList(t, planets...)

	_, err := runPicker(term, l, pickerOptions{start: -1, margin: 2})
	assert.ErrorIs(t, err, ErrCancelled)

	cur, ok := l.Current()
	require.True(t, ok)
	assert.Equal(t, "Mercury", cur.Label())
}

func TestPickerTypeAhead(t *testing.T) {
	term := newScriptedTerminal(t, testW, testH, runeKey('e'),
		runeKey('M'), key(ui.KeyEnter))
	l := newTestPickerList(t, planets...)

	e, err := runPicker(term, l, pickerOptions{start: -1, margin: 2})
	require.NoError(t, err)
	assert.Equal(t, "Mars", e.Label())
}

func TestPickerHomeEnd(t *testing.T) {
	term := newScriptedTerminal(t, testW, testH, key(ui.KeyEnd),
		key(ui.KeyEnter))
	l := newTestPickerList(t, planets...)

	e, err := runPicker(term, l, pickerOptions{start: -1, margin: 2})
	require.NoError(t, err)
	assert.Equal(t, "Pluto", e.Label())
	assert.Contains(t, term.row(6), "Pluto")

	term.keys = []ui.KeyEvent{key(ui.KeyHome), key(ui.KeyEnter)}
	e, err = runPicker(term, l, pickerOptions{start: -1, margin: 2})
	require.NoError(t, err)
	assert.Equal(t, "Mercury", e.Label())
	assert.Contains(t, term.row(3), "Mercury")
}

func TestPickerStart(t *testing.T) {
	term := newScriptedTerminal(t, testW, testH, key(ui.KeyEnter))
	l := newTestPickerList(t, planets...)

	e, err := runPicker(term, l, pickerOptions{start: 5, margin: 2})
	require.NoError(t, err)
	assert.Equal(t, "Saturn", e.Label())
}

func TestPickerStartIsRelativeToCurrent(t *testing.T) {
	term := newScriptedTerminal(t, testW, testH, key(ui.KeyEnter))
	items := testItems(planets...)
	items[2].Current = true
	l, err := buildList(items)
	require.NoError(t, err)

	e, err := runPicker(term, l, pickerOptions{start: 2, margin: 2})
	require.NoError(t, err)
	assert.Equal(t, "Jupiter", e.Label())
}

func TestPickerScreenLayout(t *testing.T) {
	term := newScriptedTerminal(t, testW, testH, key(ui.KeyDown),
		key(ui.KeyResize), key(ui.KeyEnter))
	l := newTestPickerList(t, planets...)

	_, err := runPicker(term, l, pickerOptions{title: "Pick a planet",
		start: -1, margin: 2})
	require.NoError(t, err)

	assert.Equal(t, "  Pick a planet", term.row(0)[:15])
	assert.True(t, strings.HasPrefix(term.row(2), "  ┌─"), term.row(2))
	assert.Contains(t, term.row(3), "│ Mercury")
	assert.Contains(t, term.row(4), "│ Venus")
	assert.Contains(t, term.row(7), "└")
	assert.Equal(t, genlist.GlyphMoreBelow, []rune(term.row(7))[37])
	assert.Contains(t, term.row(8), "info Venus")
	assert.Contains(t, term.row(9), "ENTER = Continue")

	_, _, st, _ := term.Screen().GetContent(4, 4)
	assert.Equal(t, term.Style(genlist.StyleSelected), st)
	_, _, st, _ = term.Screen().GetContent(1, 9)
	assert.Equal(t, term.Style(statusKeyStyle), st)
}

func TestPickerTooSmall(t *testing.T) {
	term := newScriptedTerminal(t, 8, 4)
	l := newTestPickerList(t, planets...)

	_, err := runPicker(term, l, pickerOptions{start: -1, margin: 2})
	assert.ErrorIs(t, err, ErrTerminalTooSmall)
	assert.Contains(t, term.row(0), "Please e")
}

func TestPickerEmptyList(t *testing.T) {
	term := newScriptedTerminal(t, testW, testH)

	_, err := runPicker(term, genlist.NewList(), pickerOptions{start: -1})
	assert.ErrorIs(t, err, ErrEmptyList)
}

func TestFrameRect(t *testing.T) {
	rc, err := frameRect(80, 25, 2)
	require.NoError(t, err)
	assert.Equal(t, genlist.Rect{Left: 2, Top: 2, Right: 76, Bottom: 22}, rc)

	_, err = frameRect(80, 6, 2)
	assert.ErrorIs(t, err, ErrTerminalTooSmall)
	_, err = frameRect(7, 25, 1)
	assert.ErrorIs(t, err, ErrTerminalTooSmall)
}
