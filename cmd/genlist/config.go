/* Copyright © 2023-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Prefs are the persisted defaults for the picker. Command line flags
// override them.
type Prefs struct {
	Backend     string `json:"backend"`
	Monochrome  bool   `json:"monochrome"`
	ScrollTrack bool   `json:"scroll_track"`
	Margin      int    `json:"margin"`
}

func defaultPrefs() Prefs {
	return Prefs{
		Backend: DefaultBackend,
		Margin:  DefaultMargin,
	}
}

func loadPrefs(filePath string) (Prefs, error) {
	prefs := defaultPrefs()

	prefsFileContent, err := os.ReadFile(filePath)
	if err != nil {
		return prefs, fmt.Errorf("Failed to read prefs: %w", err)
	}
	err = json.Unmarshal(prefsFileContent, &prefs)
	if err != nil {
		return defaultPrefs(), fmt.Errorf("Failed to parse prefs %v: %w",
			filePath, err)
	}
	if prefs.Backend == "" {
		prefs.Backend = DefaultBackend
	}
	if prefs.Margin < 0 {
		prefs.Margin = DefaultMargin
	}

	return prefs, nil
}

func savePrefs(filePath string, prefs Prefs) error {
	prefsFileContent, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("Failed to marshal prefs: %w", err)
	}

	err = os.MkdirAll(filepath.Dir(filePath), 0700)
	if err != nil {
		return fmt.Errorf("Could not create config directory %v: %w",
			filepath.Dir(filePath), err)
	}
	err = os.WriteFile(filePath, prefsFileContent, 0600)
	if err != nil {
		return fmt.Errorf("Failed to save prefs: %w", err)
	}

	return nil
}

func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("Could not find user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", CommandName), nil
}

func getPrefsPath() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, PrefsFile), nil
}
