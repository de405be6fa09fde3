/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"fmt"
	"log/slog"

	"github.com/mikeb26/genlist/internal/genlist"
	"github.com/mikeb26/genlist/internal/ui"
)

type pickerOptions struct {
	title string
	// start is how many entries the selection moves forward from the
	// list's current entry after the first draw; negative means keep the
	// list's current entry.
	start  int
	track  bool
	margin int
}

// picker binds a list to a terminal and runs the installer key loop.
type picker struct {
	term ui.Terminal
	list *genlist.List
	lu   *genlist.ListUI
	opts pickerOptions
	fits bool
}

// runPicker lets the user choose an entry of l. The selection current
// when the picker starts is restored if the user cancels.
func runPicker(term ui.Terminal, l *genlist.List, opts pickerOptions) (*genlist.Entry, error) {
	if l.Count() == 0 {
		return nil, ErrEmptyList
	}
	if !l.HasCurrent() {
		l.SetCurrent(l.First())
	}
	l.SaveState()

	var uiOpts []genlist.UIOption
	if opts.track {
		uiOpts = append(uiOpts, genlist.WithScrollTrack())
	}
	p := &picker{
		term: term,
		list: l,
		lu:   genlist.NewListUI(l, term, uiOpts...),
		opts: opts,
	}

	if err := p.layout(); err != nil {
		return nil, err
	}
	if opts.start >= 0 {
		p.lu.ScrollToPosition(opts.start)
		p.drawInfo()
		term.Show()
	}

	return p.loop()
}

func (p *picker) loop() (*genlist.Entry, error) {
	for {
		ev := p.term.ReadKey()
		slog.Debug("key", "key", ev.Key, "rune", ev.Rune)

		switch ev.Key {
		case ui.KeyEnter:
			if !p.fits {
				continue
			}
			e, _ := p.list.Current()
			slog.Debug("confirmed", "label", e.Label(), "index", e.Index())
			return e, nil
		case ui.KeyEscape:
			p.list.RestoreState()
			return nil, ErrCancelled
		case ui.KeyResize:
			if err := p.layout(); err != nil {
				slog.Debug("layout", "err", err)
			}
			continue
		}

		if !p.fits {
			continue
		}
		switch ev.Key {
		case ui.KeyUp:
			p.lu.ScrollUp()
		case ui.KeyDown:
			p.lu.ScrollDown()
		case ui.KeyPageUp:
			p.lu.ScrollPageUp()
		case ui.KeyPageDown:
			p.lu.ScrollPageDown()
		case ui.KeyHome:
			pageToBoundary(p.list, p.lu.ScrollPageUp)
		case ui.KeyEnd:
			pageToBoundary(p.list, p.lu.ScrollPageDown)
		case ui.KeyRune:
			p.lu.KeyPress(ev.Rune)
		default:
			continue
		}
		p.drawInfo()
		p.term.Show()
	}
}

// pageToBoundary pages until the current entry stops moving.
func pageToBoundary(l *genlist.List, page func()) {
	for {
		before, _ := l.Current()
		page()
		after, _ := l.Current()
		if after == before {
			return
		}
	}
}

// layout repaints the whole screen for its current size. When the
// screen is too small for a usable frame, only a notice is shown and
// navigation keys are ignored until the next resize.
func (p *picker) layout() error {
	p.term.Clear()
	w, h := p.term.Size()

	rect, err := frameRect(w, h, p.opts.margin)
	if err != nil {
		p.fits = false
		drawLine(p.term, 0, 0, w, "Please enlarge the window.")
		p.term.Show()
		return err
	}
	p.fits = true

	drawLine(p.term, p.opts.margin, 0, w, p.opts.title)
	if err := p.lu.Draw(rect); err != nil {
		return err
	}
	p.drawInfo()
	drawStatusSegments(p.term, h-1, w, pickerStatus)
	p.term.Show()

	return nil
}

// drawInfo shows the current item's details between the frame and the
// status bar.
func (p *picker) drawInfo() {
	w, h := p.term.Size()
	item, _ := entryItem(p.currentEntry())
	drawLine(p.term, p.opts.margin, h-2, w, item.Info)
}

func (p *picker) currentEntry() *genlist.Entry {
	e, _ := p.list.Current()
	return e
}

// frameRect places the list frame below the title row, leaving a column
// for the scroll markers and rows for the info line and status bar.
func frameRect(w, h, margin int) (genlist.Rect, error) {
	rc := genlist.Rect{
		Left:   margin,
		Top:    2,
		Right:  w - margin - 2,
		Bottom: h - 3,
	}
	if rc.Width() < 3 || rc.Height() < 2 {
		return rc, fmt.Errorf("%w: %vx%v", ErrTerminalTooSmall, w, h)
	}
	return rc, nil
}
