package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirExists(t *testing.T) {
	dir := t.TempDir()

	if !DirExists(dir) {
		t.Errorf("DirExists(%q) = false, want true", dir)
	}

	missing := filepath.Join(dir, "missing")
	if DirExists(missing) {
		t.Errorf("DirExists(%q) = true, want false", missing)
	}

	// A regular file is not a directory
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if DirExists(file) {
		t.Errorf("DirExists(%q) = true for regular file, want false", file)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")

	if FileExists(file) {
		t.Errorf("FileExists(%q) = true, want false", file)
	}

	if err := os.WriteFile(file, []byte("remote: origin\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(file) {
		t.Errorf("FileExists(%q) = false, want true", file)
	}
}
