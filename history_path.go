package readline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultHistoryFile returns the conventional history file of app:
// $XDG_CONFIG_HOME/<app>/history, or ~/.config/<app>/history when
// XDG_CONFIG_HOME is unset. It returns "" when no home directory is known.
func DefaultHistoryFile(app string) string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, app, "history")
}

// expandHistoryPath expands a leading ~ to the home directory and makes the
// path absolute.
func expandHistoryPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty history path")
	}

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert to absolute path: %w", err)
	}
	return absPath, nil
}
