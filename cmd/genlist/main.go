/* Copyright © 2023-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mikeb26/genlist/internal/genlist"
	"github.com/mikeb26/genlist/internal/ui"
)

type options struct {
	set       string
	itemsPath string
	print     bool
	start     int
	debugLog  string
	lockPath  string
	savePrefs bool
	prefs     Prefs
}

func parseArgs(args []string, prefs Prefs, stderr io.Writer) (options, error) {
	opts := options{prefs: prefs}

	f := flag.NewFlagSet(CommandName, flag.ContinueOnError)
	f.SetOutput(stderr)
	f.Usage = func() {
		fmt.Fprintf(f.Output(), "usage: %v [flags] [items.json]\n", CommandName)
		f.PrintDefaults()
	}
	f.StringVar(&opts.set, "set", DefaultSet,
		fmt.Sprintf("built-in item set %v", builtinSetNames()))
	f.StringVar(&opts.prefs.Backend, "backend", prefs.Backend,
		"terminal backend (ncurses, tcell or stdio)")
	f.BoolVar(&opts.prefs.Monochrome, "mono", prefs.Monochrome,
		"do not use colors")
	f.BoolVar(&opts.prefs.ScrollTrack, "track", prefs.ScrollTrack,
		"draw a scroll track beside the list")
	f.IntVar(&opts.prefs.Margin, "margin", prefs.Margin,
		"columns left of and right of the list frame")
	f.BoolVar(&opts.print, "print", false,
		"print the items instead of starting the picker")
	f.IntVar(&opts.start, "start", -1,
		"move the selection this many entries forward after the first draw")
	f.StringVar(&opts.debugLog, "debug-log", "",
		"append debug records to this file")
	f.StringVar(&opts.lockPath, "lock", filepath.Join(os.TempDir(), LockFile),
		"single instance lock file")
	f.BoolVar(&opts.savePrefs, "save-prefs", false,
		"save backend, mono, track and margin as the new defaults")

	if err := f.Parse(args); err != nil {
		return opts, err
	}
	switch f.NArg() {
	case 0:
	case 1:
		opts.itemsPath = f.Arg(0)
	default:
		f.Usage()
		return opts, fmt.Errorf("expected at most one items file, got %v",
			f.NArg())
	}
	switch opts.prefs.Backend {
	case BackendNcurses, BackendTcell, BackendStdio:
	default:
		return opts, fmt.Errorf("%w %q", ErrUnknownBackend, opts.prefs.Backend)
	}
	if opts.prefs.Margin < 0 {
		return opts, fmt.Errorf("margin must not be negative: %v",
			opts.prefs.Margin)
	}

	return opts, nil
}

func loadItemSet(opts options) ([]Item, string, error) {
	if opts.itemsPath != "" {
		return loadItemsFile(opts.itemsPath)
	}
	return builtinItems(opts.set)
}

func openTerminal(prefs Prefs) (ui.Terminal, error) {
	theme := ui.Theme{UseColors: !prefs.Monochrome}

	switch prefs.Backend {
	case BackendTcell:
		return ui.NewTcellTerminal(nil, theme)
	case BackendNcurses:
		t, err := ui.NewNcursesTerminal()
		if err != nil {
			return nil, err
		}
		if prefs.Monochrome {
			t.SetTheme(theme)
		}
		return t, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownBackend, prefs.Backend)
}

func readPrefs(stderr io.Writer) Prefs {
	prefsPath, err := getPrefsPath()
	if err != nil {
		fmt.Fprintf(stderr, "*WARN*: %v\n", err)
		return defaultPrefs()
	}
	prefs, err := loadPrefs(prefsPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(stderr, "*WARN*: %v; using defaults\n", err)
	}
	return prefs
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, readPrefs(stderr), stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintf(stderr, "%v: %v\n", CommandName, err)
		return ExitError
	}

	closeLog, err := setupDebugLog(opts.debugLog)
	if err != nil {
		fmt.Fprintf(stderr, "%v: %v\n", CommandName, err)
		return ExitError
	}
	defer closeLog()

	if opts.savePrefs {
		prefsPath, err := getPrefsPath()
		if err == nil {
			err = savePrefs(prefsPath, opts.prefs)
		}
		if err != nil {
			fmt.Fprintf(stderr, "*WARN*: %v\n", err)
		}
	}

	items, title, err := loadItemSet(opts)
	if err != nil {
		fmt.Fprintf(stderr, "%v: %v\n", CommandName, err)
		return ExitError
	}
	l, err := buildList(items)
	if err != nil {
		fmt.Fprintf(stderr, "%v: %v\n", CommandName, err)
		return ExitError
	}
	defer func() { _ = l.Destroy(false) }()

	if opts.print {
		if err := printItems(stdout, title, l); err != nil {
			fmt.Fprintf(stderr, "%v: %v\n", CommandName, err)
			return ExitError
		}
		return ExitOK
	}

	lock, err := acquireLock(opts.lockPath)
	if err != nil {
		fmt.Fprintf(stderr, "%v: %v\n", CommandName, err)
		return ExitError
	}
	defer func() { _ = lock.Unlock() }()

	e, err := pick(opts, title, l)
	if errors.Is(err, ErrCancelled) {
		fmt.Fprintf(stderr, "%v: %v.\n", CommandName, err)
		return ExitCancelled
	}
	if err != nil {
		fmt.Fprintf(stderr, "%v: %v\n", CommandName, err)
		return ExitError
	}

	item, _ := entryItem(e)
	fmt.Fprintf(stdout, "%v\t%v\n", e.Label(), item.ID)
	return ExitOK
}

// pick owns the terminal for the duration of the picker so that it is
// restored before anything is printed.
func pick(opts options, title string, l *genlist.List) (*genlist.Entry, error) {
	if opts.prefs.Backend == BackendStdio {
		return pickLine(ui.NewStdioUI(), title, l)
	}

	term, err := openTerminal(opts.prefs)
	if err != nil {
		return nil, err
	}
	defer term.Close()

	slog.Debug("picker start", "backend", opts.prefs.Backend,
		"entries", l.Count())
	return runPicker(term, l, pickerOptions{
		title:  title,
		start:  opts.start,
		track:  opts.prefs.ScrollTrack,
		margin: opts.prefs.Margin,
	})
}

// pickLine is the line-oriented fallback for consoles without a
// full-screen terminal.
func pickLine(s *ui.StdioUI, title string, l *genlist.List) (*genlist.Entry, error) {
	labels := make([]string, 0, l.Count())
	for e := range l.All() {
		labels = append(labels, e.Label())
	}
	current := -1
	if cur, ok := l.Current(); ok {
		current = cur.Index()
	}

	idx, err := s.SelectIndex(title, labels, current)
	if errors.Is(err, ui.ErrNoChoices) {
		return nil, ErrEmptyList
	}
	if errors.Is(err, ui.ErrSelectionCancelled) {
		return nil, ErrCancelled
	}
	if err != nil {
		return nil, err
	}

	e := l.First()
	for i := 0; i < idx; i++ {
		e = l.Next(e)
	}
	l.SetCurrent(e)
	return e, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
