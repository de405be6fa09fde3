/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package main

import (
	"errors"
)

var (
	ErrCancelled        = errors.New("selection cancelled")
	ErrEmptyList        = errors.New("there is nothing to select")
	ErrTerminalTooSmall = errors.New("terminal is too small")
	ErrUnknownSet       = errors.New("unknown item set")
	ErrUnknownBackend   = errors.New("unknown terminal backend")
	ErrInvalidItem      = errors.New("invalid item")
	ErrAlreadyRunning   = errors.New("another instance is already running")
)
