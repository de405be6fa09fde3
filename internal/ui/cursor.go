/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"sync/atomic"

	gc "github.com/rthornton128/goncurses"
)

// cursorVisible shadows the last value passed to SetCursorVisible;
// ncurses offers no way to query it.
var cursorVisible atomic.Bool

// SetCursorVisible sets ncurses terminal cursor visibility. This is
// process-wide state.
func SetCursorVisible(visible bool) {
	cursorVisible.Store(visible)
	if visible {
		_ = gc.Cursor(1)
		return
	}
	_ = gc.Cursor(0)
}

// CursorVisible returns the last value set via SetCursorVisible.
func CursorVisible() bool {
	return cursorVisible.Load()
}
