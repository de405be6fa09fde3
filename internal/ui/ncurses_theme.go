/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"github.com/mikeb26/genlist/internal/genlist"
	gc "github.com/rthornton128/goncurses"
)

// attr returns the ncurses attribute for style. With colors on, each
// distinct style gets its own color pair the first time it is drawn;
// once the terminal runs out of pairs, or without colors at all, the
// style falls back to reverse video and bold.
func (n *NcursesTerminal) attr(style genlist.Style) gc.Char {
	if style == 0 {
		return gc.A_NORMAL
	}
	if n.theme.UseColors {
		if pair, ok := n.colorPair(style); ok {
			a := gc.A_NORMAL | gc.ColorPair(pair)
			if n.theme.Bold(style) {
				a |= gc.A_BOLD
			}
			return a
		}
	}
	return monoAttr(n.theme, style)
}

func (n *NcursesTerminal) colorPair(style genlist.Style) (int16, bool) {
	if pair, ok := n.pairs[style]; ok {
		return pair, true
	}
	if int(n.next) >= gc.ColorPairs() {
		return 0, false
	}
	fg := int16(consoleToANSI(style.Foreground()))
	bg := int16(consoleToANSI(style.Background()))
	if err := gc.InitPair(n.next, fg, bg); err != nil {
		return 0, false
	}
	n.pairs[style] = n.next
	n.next++

	return n.pairs[style], true
}

func monoAttr(t Theme, style genlist.Style) gc.Char {
	a := gc.Char(gc.A_NORMAL)
	if t.Reverse(style) {
		a |= gc.A_REVERSE
	}
	if t.Bold(style) {
		a |= gc.A_BOLD
	}
	return a
}
