/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/mikeb26/genlist/internal/genlist"
)

// Item is one selectable row and the payload attached to its list
// entry.
type Item struct {
	ID      uuid.UUID
	Label   string
	Info    string
	Current bool
}

type itemJSON struct {
	ID      string `json:"id,omitempty"`
	Label   string `json:"label"`
	Info    string `json:"info,omitempty"`
	Current bool   `json:"current,omitempty"`
}

type builtinSet struct {
	title  string
	labels []string
	info   []string
}

// builtinSets mirror the pages of a text-mode OS installer.
var builtinSets = map[string]builtinSet{
	"languages": {
		title: "Language Selection. Please choose the language used for the installation process.",
		labels: []string{
			"English (United States)", "Deutsch (Deutschland)",
			"Español (España)", "Français (France)", "Italiano (Italia)",
			"Nederlands (Nederland)", "Polski (Polska)",
			"Português (Brasil)", "Русский (Россия)", "Svenska (Sverige)",
			"Türkçe (Türkiye)", "Українська (Україна)", "日本語 (日本)",
		},
	},
	"keyboards": {
		title: "Please select the keyboard layout to be installed.",
		labels: []string{
			"US", "US-Dvorak", "United Kingdom", "German", "Swiss German",
			"French", "Belgian French", "Spanish", "Italian", "Portuguese",
			"Polish (Programmers)", "Russian", "Swedish", "Turkish Q",
			"Japanese",
		},
	},
	"disks": {
		title: "Please select the hard disk the operating system will be installed on.",
		labels: []string{
			"Harddisk 0 (81917 MB) on IDE bus 0, target 0 (ATA)",
			"Harddisk 1 (20480 MB) on IDE bus 1, target 0 (ATA)",
			"Harddisk 2 (512000 MB) on SCSI bus 0, target 1 (SCSI)",
		},
		info: []string{
			"Primary master", "Secondary master", "SCSI controller 0",
		},
	},
	"partitions": {
		title: "The list below shows existing partitions and unused disk space for new partitions.",
		labels: []string{
			"C:  Partition 1 (FAT32)            2047 MB",
			"D:  Partition 2 (NTFS)            40960 MB",
			"    Unpartitioned space            20480 MB",
			"E:  Partition 3 (BtrFS)            18429 MB",
		},
		info: []string{
			"Active system partition", "Data partition",
			"Free space", "Logical partition",
		},
	},
}

func builtinSetNames() []string {
	names := make([]string, 0, len(builtinSets))
	for name := range builtinSets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// builtinItems returns the named set. Identifiers are derived from the
// set and label so they are stable across runs; the first row is
// current.
func builtinItems(set string) ([]Item, string, error) {
	bs, ok := builtinSets[set]
	if !ok {
		return nil, "", fmt.Errorf("%w %q: choose one of %v", ErrUnknownSet,
			set, strings.Join(builtinSetNames(), ", "))
	}

	items := make([]Item, 0, len(bs.labels))
	for i, label := range bs.labels {
		item := Item{
			ID:      uuid.NewSHA1(uuid.NameSpaceOID, []byte(set+"/"+label)),
			Label:   label,
			Current: i == 0,
		}
		if i < len(bs.info) {
			item.Info = bs.info[i]
		}
		items = append(items, item)
	}
	return items, bs.title, nil
}

// loadItems decodes a JSON array of items. Items without an id get a
// random one.
func loadItems(r io.Reader) ([]Item, error) {
	var raw []itemJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}

	items := make([]Item, 0, len(raw))
	for i, ri := range raw {
		item := Item{Label: ri.Label, Info: ri.Info, Current: ri.Current}
		if ri.ID == "" {
			item.ID = uuid.New()
		} else {
			id, err := uuid.Parse(ri.ID)
			if err != nil {
				return nil, fmt.Errorf("%w #%v (%q): %w", ErrInvalidItem, i,
					ri.Label, err)
			}
			item.ID = id
		}
		items = append(items, item)
	}
	return items, nil
}

func loadItemsFile(filePath string) ([]Item, string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("Could not open %v: %w", filePath, err)
	}
	defer f.Close()

	items, err := loadItems(f)
	if err != nil {
		return nil, "", fmt.Errorf("%v: %w", filePath, err)
	}
	title := fmt.Sprintf("Please select an entry from %v.",
		filepath.Base(filePath))
	return items, title, nil
}

// buildList appends every item to a new list with the item as payload.
// When several items claim to be current the last one wins.
func buildList(items []Item, opts ...genlist.ListOption) (*genlist.List, error) {
	l := genlist.NewList(opts...)
	for _, item := range items {
		_, err := l.Append(item.Label, item, item.Current)
		if err != nil {
			_ = l.Destroy(false)
			return nil, fmt.Errorf("Could not add %q: %w", item.Label, err)
		}
	}
	return l, nil
}

func entryItem(e *genlist.Entry) (Item, bool) {
	if e == nil {
		return Item{}, false
	}
	item, ok := e.Payload().(Item)
	return item, ok
}
