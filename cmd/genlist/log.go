/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"fmt"
	"log/slog"
	"os"
)

// setupDebugLog points the default slog logger at logPath. With an empty
// path, debug records are discarded. The returned func closes the file.
func setupDebugLog(logPath string) (func(), error) {
	if logPath == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return func() {}, nil
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("Could not open debug log %v: %w", logPath, err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(h).With("pid", os.Getpid()))

	return func() { _ = f.Close() }, nil
}
