/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

const (
	CommandName = "genlist"
	PrefsFile   = "prefs.json"
	LockFile    = "genlist.lock"

	BackendNcurses = "ncurses"
	BackendTcell   = "tcell"
	BackendStdio   = "stdio"

	DefaultBackend = BackendNcurses
	DefaultSet     = "languages"
	DefaultMargin  = 2
)

// Exit statuses.
const (
	ExitOK        = 0
	ExitError     = 1
	ExitCancelled = 2
)
