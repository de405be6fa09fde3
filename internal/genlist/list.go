/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package genlist implements the generic selection list used by the
// text-mode installer screens: an append-only ordered collection with a
// single current entry (List) and a framed, scrollable view of it
// (ListUI).
//
// Nothing in this package is safe for concurrent use. It is meant to be
// driven from the single goroutine that owns the terminal, once per
// keystroke.
package genlist

import (
	"errors"
	"io"
	"iter"
	"strings"
)

// noEntry marks "no entry" for index-valued state such as the current
// selection, the backup selection and the window bounds.
const noEntry = -1

var (
	ErrListFull      = errors.New("genlist: list is full")
	ErrInvalidLabel  = errors.New("genlist: label must not contain NUL")
	ErrListDestroyed = errors.New("genlist: list has been destroyed")
)

// Entry is one labeled element of a List. The label is copied on
// append; the payload is owned by the caller and stored by reference.
type Entry struct {
	list    *List
	index   int
	label   string
	payload any
}

// Label returns the text shown for the entry.
func (e *Entry) Label() string {
	if e == nil {
		return ""
	}
	return e.label
}

// Payload returns the caller-owned value attached to the entry.
func (e *Entry) Payload() any {
	if e == nil {
		return nil
	}
	return e.payload
}

// Index returns the zero-based position of the entry in its list, or -1
// for a nil entry or one whose list was destroyed.
func (e *Entry) Index() int {
	if e == nil || e.list == nil {
		return noEntry
	}
	return e.index
}

// List is an ordered collection of entries with one current entry and
// one saved (backup) selection.
type List struct {
	entries    []*Entry
	current    int
	backup     int
	maxEntries int
	destroyed  bool
}

type ListOption func(*List)

// WithMaxEntries caps the number of entries the list accepts. Appends
// past the cap fail with ErrListFull. n <= 0 means no cap.
func WithMaxEntries(n int) ListOption {
	return func(l *List) {
		l.maxEntries = n
	}
}

func NewList(opts ...ListOption) *List {
	l := &List{
		entries: make([]*Entry, 0),
		current: noEntry,
		backup:  noEntry,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Append adds a new entry at the tail. The entry becomes current when
// makeCurrent is set or when the list has no current entry yet. On
// error the list is left unchanged.
func (l *List) Append(label string, payload any, makeCurrent bool) (*Entry, error) {
	if l.destroyed {
		return nil, ErrListDestroyed
	}
	if strings.IndexByte(label, 0) >= 0 {
		return nil, ErrInvalidLabel
	}
	if l.maxEntries > 0 && len(l.entries) >= l.maxEntries {
		return nil, ErrListFull
	}

	e := &Entry{
		list:    l,
		index:   len(l.entries),
		label:   strings.Clone(label),
		payload: payload,
	}
	l.entries = append(l.entries, e)

	if makeCurrent || l.current == noEntry {
		l.current = e.index
	}

	return e, nil
}

// Destroy releases every entry. When releasePayloads is set, payloads
// implementing io.Closer are closed; the caller attests that each such
// payload is owned by exactly one entry. Close errors are joined and
// returned but never stop the release. The list cannot be reused.
func (l *List) Destroy(releasePayloads bool) error {
	var errs []error

	for _, e := range l.entries {
		if releasePayloads && e.payload != nil {
			if c, ok := e.payload.(io.Closer); ok {
				if err := c.Close(); err != nil {
					errs = append(errs, err)
				}
			}
		}
		e.list = nil
		e.payload = nil
	}

	l.entries = nil
	l.current = noEntry
	l.backup = noEntry
	l.destroyed = true

	return errors.Join(errs...)
}

// owns reports whether e is linked into this exact list.
func (l *List) owns(e *Entry) bool {
	return e != nil && e.list == l && !l.destroyed
}

func (l *List) at(idx int) *Entry {
	if idx < 0 || idx >= len(l.entries) {
		return nil
	}
	return l.entries[idx]
}

// SetCurrent makes e the current entry. Entries that belong to another
// list are ignored.
func (l *List) SetCurrent(e *Entry) {
	if !l.owns(e) {
		return
	}
	l.current = e.index
}

// Current returns the current entry and whether there is one.
func (l *List) Current() (*Entry, bool) {
	e := l.at(l.current)
	return e, e != nil
}

func (l *List) HasCurrent() bool {
	return l.current != noEntry
}

// First returns the head entry, or nil for an empty list.
func (l *List) First() *Entry {
	return l.at(0)
}

// Last returns the tail entry, or nil for an empty list.
func (l *List) Last() *Entry {
	return l.at(len(l.entries) - 1)
}

// Next returns the entry after e, or nil at the tail.
func (l *List) Next(e *Entry) *Entry {
	if !l.owns(e) {
		return nil
	}
	return l.at(e.index + 1)
}

// Prev returns the entry before e, or nil at the head.
func (l *List) Prev(e *Entry) *Entry {
	if !l.owns(e) {
		return nil
	}
	return l.at(e.index - 1)
}

// All walks the list from head to tail one entry at a time. The
// sequence may be restarted.
func (l *List) All() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for e := l.First(); e != nil; e = l.Next(e) {
			if !yield(e) {
				return
			}
		}
	}
}

// SaveState snapshots the current selection.
func (l *List) SaveState() {
	l.backup = l.current
}

// RestoreState makes the snapshot current again. Without a prior
// SaveState this clears the selection; cancel flows rely on that.
func (l *List) RestoreState() {
	l.current = l.backup
}

func (l *List) Count() int {
	return len(l.entries)
}

// HasSingleEntry reports whether head and tail are the same entry.
func (l *List) HasSingleEntry() bool {
	first := l.First()
	return first != nil && first == l.Last()
}
