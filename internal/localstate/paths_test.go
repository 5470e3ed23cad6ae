package localstate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDir_Override(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "state")

	dir, err := DataDir(tmp)
	if err != nil {
		t.Fatalf("DataDir error: %v", err)
	}
	if dir != tmp {
		t.Fatalf("expected dir %s, got %s", tmp, dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("dir not created: %v", err)
	}
}

func TestDataDir_DefaultsToHome(t *testing.T) {
	dir, err := DataDir("")
	if err != nil {
		t.Fatalf("DataDir error: %v", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("home: %v", err)
	}
	if dir != filepath.Join(home, dirName) {
		t.Fatalf("expected default under home, got %s", dir)
	}
}

func TestDBPath(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "state")

	p, err := DBPath(tmp)
	if err != nil {
		t.Fatalf("DBPath error: %v", err)
	}
	expected := filepath.Join(tmp, dbFilename)
	if p != expected {
		t.Fatalf("expected path %s, got %s", expected, p)
	}
}
