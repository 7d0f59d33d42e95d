// ABOUTME: XDG-based data directory resolution for the vmb CLI.
// ABOUTME: Checks XDG_DATA_HOME, falls back to ~/.local/share/vmb.
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultDataDir returns the default data directory for vmb persistent state.
// It checks XDG_DATA_HOME first, then falls back to ~/.local/share/vmb.
func defaultDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "vmb"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "vmb"), nil
}
