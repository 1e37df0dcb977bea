package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in path and resolves
// it to an absolute, clean path.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand environment variables first (e.g., $HOME)
	path = os.ExpandEnv(path)

	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return homeDir, nil
		}
		if strings.HasPrefix(path, "~/") {
			return filepath.Join(homeDir, path[2:]), nil
		}
		// ~user syntax is not supported, fall through as-is
	}

	return filepath.Abs(path)
}
