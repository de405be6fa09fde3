/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrNoChoices          = errors.New("no choices provided")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// StdioUI is a line-oriented chooser for consoles where a full-screen
// terminal is unavailable, such as serial consoles or scripted installs.
type StdioUI struct {
	in  *bufio.Reader
	out io.Writer
}

func NewStdioUI() *StdioUI {
	return &StdioUI{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

func (s *StdioUI) WithReader(r io.Reader) *StdioUI {
	s.in = bufio.NewReader(r)
	return s
}

func (s *StdioUI) WithWriter(w io.Writer) *StdioUI {
	s.out = w
	return s
}

// SelectIndex lists choices with 1-based numbers, marking the one at
// current, and reads the user's pick. An empty line keeps current and
// "q" cancels. It returns the 0-based index chosen.
func (s *StdioUI) SelectIndex(userPrompt string, choices []string,
	current int) (int, error) {

	if len(choices) == 0 {
		return -1, ErrNoChoices
	}

	fmt.Fprintln(s.out, userPrompt)
	for i, c := range choices {
		mark := " "
		if i == current {
			mark = ">"
		}
		fmt.Fprintf(s.out, "%v %d) %s\n", mark, i+1, c)
	}
	s.prompt(current, len(choices))

	for {
		line, err := s.in.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return -1, err
		}
		line = strings.TrimSpace(line)

		switch {
		case line == "" && current >= 0 && current < len(choices):
			return current, nil
		case strings.EqualFold(line, "q"):
			return -1, ErrSelectionCancelled
		}

		var idx int
		_, scanErr := fmt.Sscanf(line, "%d", &idx)
		if scanErr == nil && idx >= 1 && idx <= len(choices) {
			return idx - 1, nil
		}
		if err != nil {
			return -1, err
		}
		fmt.Fprintf(s.out,
			"Invalid selection. Please enter a number between 1 and %d: ",
			len(choices))
	}
}

func (s *StdioUI) prompt(current, n int) {
	if current >= 0 && current < n {
		fmt.Fprintf(s.out, "Enter choice number [%d], or q to cancel: ",
			current+1)
		return
	}
	fmt.Fprint(s.out, "Enter choice number, or q to cancel: ")
}
