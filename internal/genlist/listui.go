/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package genlist

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

var ErrInvalidRect = errors.New("genlist: invalid list rectangle")

// Rect is the border-inclusive rectangle a ListUI occupies. The frame
// is drawn on its edges; entries use the rows and columns in between.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Height returns the number of interior rows available for entries.
func (r Rect) Height() int { return r.Bottom - r.Top - 1 }

// Width returns the number of interior columns.
func (r Rect) Width() int { return r.Right - r.Left - 1 }

// ListUI is a framed, scrollable view of a List. It keeps a contiguous
// window [firstShown, lastShown] of entries on screen and moves it so
// that the current entry stays inside it.
type ListUI struct {
	list *List
	r    Renderer

	rect   Rect
	placed bool

	firstShown int
	lastShown  int

	redraw bool
	track  bool
}

type UIOption func(*ListUI)

// WithScrollTrack paints a proportional thumb on the interior rows of
// the marker column.
func WithScrollTrack() UIOption {
	return func(ui *ListUI) {
		ui.track = true
	}
}

// NewListUI binds a view to list. The view has no window until the
// first Draw. A nil renderer keeps the window bookkeeping but paints
// nothing.
func NewListUI(list *List, r Renderer, opts ...UIOption) *ListUI {
	ui := &ListUI{
		list:       list,
		r:          r,
		firstShown: noEntry,
		lastShown:  noEntry,
		redraw:     true,
	}
	for _, opt := range opts {
		opt(ui)
	}

	return ui
}

func (ui *ListUI) List() *List { return ui.list }

func (ui *ListUI) Rect() Rect { return ui.rect }

// FirstShown returns the top entry of the window, or nil.
func (ui *ListUI) FirstShown() *Entry {
	if ui.list == nil {
		return nil
	}
	return ui.list.at(ui.firstShown)
}

// LastShown returns the bottom entry of the window, or nil.
func (ui *ListUI) LastShown() *Entry {
	if ui.list == nil {
		return nil
	}
	return ui.list.at(ui.lastShown)
}

// Draw places the view at rect, centers the window on the current
// entry when the list does not fit, and paints frame, entries and
// scroll markers.
func (ui *ListUI) Draw(rect Rect) error {
	if rect.Right <= rect.Left || rect.Bottom <= rect.Top {
		return fmt.Errorf("%w: %+v", ErrInvalidRect, rect)
	}
	if ui.list == nil {
		return nil
	}

	ui.rect = rect
	ui.placed = true
	ui.firstShown = noEntry
	ui.lastShown = noEntry
	if ui.list.Count() > 0 {
		ui.firstShown = 0
	}

	ui.drawFrame()

	if ui.list.Count() == 0 {
		return nil
	}

	ui.center()
	ui.drawEntries()
	ui.drawScrollBar()

	return nil
}

// ScrollDown makes the entry after the current one current.
func (ui *ListUI) ScrollDown() {
	if !ui.stepDown() {
		return
	}
	if ui.redraw {
		ui.refresh()
	}
}

// ScrollUp makes the entry before the current one current.
func (ui *ListUI) ScrollUp() {
	if !ui.stepUp() {
		return
	}
	if ui.redraw {
		ui.refresh()
	}
}

// ScrollPageDown moves the selection down by one row less than the
// interior height and repaints once.
func (ui *ListUI) ScrollPageDown() {
	if !ui.navigable() {
		return
	}
	ui.batch(func() {
		for i := ui.rect.Top + 1; i < ui.rect.Bottom-1; i++ {
			ui.ScrollDown()
		}
	})
}

// ScrollPageUp moves the selection up by one row less than the interior
// height and repaints once.
func (ui *ListUI) ScrollPageUp() {
	if !ui.navigable() {
		return
	}
	ui.batch(func() {
		for i := ui.rect.Bottom - 1; i > ui.rect.Top+1; i-- {
			ui.ScrollUp()
		}
	})
}

// ScrollToPosition moves the selection index entries forward from the
// current one, stopping at the tail, and repaints once. index <= 0 does
// nothing.
func (ui *ListUI) ScrollToPosition(index int) {
	if !ui.navigable() || index <= 0 {
		return
	}
	ui.batch(func() {
		for i := 0; i < index; i++ {
			if !ui.stepDown() {
				break
			}
		}
	})
}

// Redraw repaints entries and scroll markers, but not the frame.
func (ui *ListUI) Redraw() {
	if !ui.navigable() {
		return
	}
	if ui.redraw {
		ui.refresh()
	}
}

// KeyPress performs a type-ahead search for the next entry whose label
// starts with ch, ignoring case. The entry right after the current one
// wins; otherwise the first match from the head. Without a match the
// selection stays where it was.
func (ui *ListUI) KeyPress(ch rune) {
	if !ui.navigable() {
		return
	}
	ui.batch(func() {
		ui.typeAhead(ch)
	})
}

func (ui *ListUI) typeAhead(ch rune) {
	l := ui.list
	orig := l.current

	if next := l.at(orig + 1); next != nil && labelStartsWith(next.label, ch) {
		ui.stepDown()
		return
	}

	for ui.stepUp() {
	}
	for {
		if labelStartsWith(l.entries[l.current].label, ch) {
			return
		}
		if !ui.stepDown() {
			break
		}
	}

	for l.current != orig && ui.stepUp() {
	}
}

func labelStartsWith(label string, ch rune) bool {
	if label == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(label)
	return unicode.ToLower(first) == unicode.ToLower(ch)
}

func (ui *ListUI) navigable() bool {
	return ui.list != nil && ui.list.HasCurrent()
}

// suspendRedraw turns automatic repaints off and returns the function
// that restores the previous setting.
func (ui *ListUI) suspendRedraw() (resume func()) {
	prev := ui.redraw
	ui.redraw = false
	return func() {
		ui.redraw = prev
	}
}

// batch runs fn with repaints suspended, then repaints once unless an
// enclosing batch is still suspended.
func (ui *ListUI) batch(fn func()) {
	func() {
		resume := ui.suspendRedraw()
		defer resume()
		fn()
	}()

	if ui.redraw {
		ui.refresh()
	}
}

func (ui *ListUI) stepDown() bool {
	if !ui.navigable() {
		return false
	}
	l := ui.list
	if l.current+1 >= len(l.entries) {
		return false
	}
	if ui.lastShown == l.current {
		ui.firstShown++
		ui.lastShown++
	}
	l.current++

	return true
}

func (ui *ListUI) stepUp() bool {
	if !ui.navigable() {
		return false
	}
	l := ui.list
	if l.current <= 0 {
		return false
	}
	if ui.firstShown == l.current {
		ui.firstShown--
		ui.lastShown--
	}
	l.current--

	return true
}

// center positions the window so the current entry sits near its
// middle. It only walks as many entries as fit in the view.
func (ui *ListUI) center() {
	l := ui.list
	if !l.HasCurrent() {
		return
	}

	capacity := ui.rect.Height()
	if capacity < 0 {
		capacity = 0
	}
	if l.Count() <= capacity {
		return
	}

	idx := l.current
	for i := 0; i < capacity/2; i++ {
		if idx > 0 {
			idx--
		}
	}
	ui.firstShown = idx

	for i := 0; i < capacity; i++ {
		if idx < len(l.entries)-1 {
			idx++
		}
	}
	ui.lastShown = idx
}

func (ui *ListUI) refresh() {
	if !ui.placed || ui.list == nil {
		return
	}
	ui.drawEntries()
	ui.drawScrollBar()
}

func (ui *ListUI) drawFrame() {
	if ui.r == nil {
		return
	}
	rc := ui.rect
	inner := rc.Right - rc.Left - 1

	ui.r.FillCharacter(Cell{rc.Left, rc.Top}, GlyphTopLeft, 1)
	ui.r.FillCharacter(Cell{rc.Left + 1, rc.Top}, GlyphHorizontal, inner)
	ui.r.FillCharacter(Cell{rc.Right, rc.Top}, GlyphTopRight, 1)

	for y := rc.Top + 1; y < rc.Bottom; y++ {
		ui.r.FillCharacter(Cell{rc.Left, y}, GlyphVertical, 1)
		ui.r.FillCharacter(Cell{rc.Right, y}, GlyphVertical, 1)
	}

	ui.r.FillCharacter(Cell{rc.Left, rc.Bottom}, GlyphBottomLeft, 1)
	ui.r.FillCharacter(Cell{rc.Left + 1, rc.Bottom}, GlyphHorizontal, inner)
	ui.r.FillCharacter(Cell{rc.Right, rc.Bottom}, GlyphBottomRight, 1)
}

// drawEntries paints the window from firstShown down and records the
// last entry that fit as lastShown. It runs even without a renderer so
// the window stays consistent.
func (ui *ListUI) drawEntries() {
	l := ui.list
	rc := ui.rect
	width := rc.Width()
	y := rc.Top + 1

	for idx := ui.firstShown; idx >= 0 && idx < len(l.entries); idx++ {
		if y >= rc.Bottom {
			break
		}
		ui.lastShown = idx

		style := StyleNormal
		if idx == l.current {
			style = StyleSelected
		}
		if ui.r != nil {
			at := Cell{rc.Left + 1, y}
			ui.r.FillAttribute(at, style, width)
			ui.r.FillCharacter(at, ' ', width)
			if text := truncateLabel(l.entries[idx].label, width-2); len(text) > 0 {
				ui.r.WriteText(Cell{at.X + 1, y}, text)
			}
		}
		y++
	}

	if ui.r == nil {
		return
	}
	for ; y < rc.Bottom; y++ {
		at := Cell{rc.Left + 1, y}
		ui.r.FillAttribute(at, StyleNormal, width)
		ui.r.FillCharacter(at, ' ', width)
	}
}

// truncateLabel returns at most max bytes of label, never splitting a
// UTF-8 sequence.
func truncateLabel(label string, max int) []byte {
	if max <= 0 {
		return nil
	}
	if len(label) <= max {
		return []byte(label)
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(label[cut]) {
		cut--
	}
	return []byte(label[:cut])
}

func (ui *ListUI) drawScrollBar() {
	if ui.r == nil {
		return
	}
	l := ui.list
	rc := ui.rect
	x := rc.Right + 1

	above := ' '
	if ui.firstShown != 0 {
		above = GlyphMoreAbove
	}
	ui.r.FillCharacter(Cell{x, rc.Top}, above, 1)

	below := ' '
	if ui.lastShown != len(l.entries)-1 {
		below = GlyphMoreBelow
	}
	ui.r.FillCharacter(Cell{x, rc.Bottom}, below, 1)

	if !ui.track {
		return
	}
	height := rc.Height()
	st := computeScrollTrack(len(l.entries), height, ui.firstShown)
	for row := 0; row < height; row++ {
		ui.r.FillCharacter(Cell{x, rc.Top + 1 + row}, st.glyphAt(row), 1)
	}
}
