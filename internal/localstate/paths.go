package localstate

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirName    = ".brewnote" // default under $HOME
	dbFilename = "brewnote.db"
)

// DataDir returns the directory where the journal's local state is stored.
// A non-empty override (config.StateHome) wins; otherwise ~/.brewnote. The
// directory is created with 0700 permissions if it does not exist.
func DataDir(override string) (string, error) {
	dir := override
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine user home: %w", err)
		}
		dir = filepath.Join(home, dirName)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// DBPath returns the absolute path to the SQLite database file.
func DBPath(override string) (string, error) {
	dir, err := DataDir(override)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFilename), nil
}
