// Package config loads and validates tally settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// memoryPath selects a throwaway SQLite database and is passed through untouched.
const memoryPath = ":memory:"

// ExpandPath resolves a configured path: $VAR references are substituted, a
// leading ~ becomes the home directory and the result is cleaned.
func ExpandPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path == memoryPath {
		return path
	}

	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + path[1:]
		}
	}
	return filepath.Clean(path)
}

// ConfigDir is the directory searched for config.yaml.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tally"), nil
}
