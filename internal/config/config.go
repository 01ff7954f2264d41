package config

import (
	"os"
	"path/filepath"
)

const (
	// DefaultScanFolder is where select_folder points when no override
	// is set.
	DefaultScanFolder = "~/Downloads"

	defaultJournalFile = "filesense/journal.db"
)

// ScanFolder returns the scan folder from the FILESENSE_FOLDER env var,
// falling back to DefaultScanFolder.
func ScanFolder() string {
	if env := os.Getenv("FILESENSE_FOLDER"); env != "" {
		return env
	}
	return DefaultScanFolder
}

// JournalPath returns the move-log journal location from the
// FILESENSE_JOURNAL env var, falling back to the user config directory.
func JournalPath() string {
	if env := os.Getenv("FILESENSE_JOURNAL"); env != "" {
		return env
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return defaultJournalFile
	}
	return filepath.Join(dir, defaultJournalFile)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
