/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mikeb26/genlist/internal/genlist"
)

// printItems writes the list without a terminal UI, one entry per line,
// marking and highlighting the current entry.
func printItems(w io.Writer, title string, l *genlist.List) error {
	if title != "" {
		if _, err := fmt.Fprintf(w, "%v\n\n", title); err != nil {
			return err
		}
	}

	cur, _ := l.Current()
	highlight := color.New(color.FgCyan, color.Bold)
	for e := range l.All() {
		item, _ := entryItem(e)
		var err error
		if e == cur {
			_, err = highlight.Fprintf(w, "> %-48v %v\n", e.Label(), item.ID)
		} else {
			_, err = fmt.Fprintf(w, "  %-48v %v\n", e.Label(), item.ID)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
