package local

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/om270459-crypto/ghpush/internal/constants"
	ghperrors "github.com/om270459-crypto/ghpush/internal/errors"
	"github.com/om270459-crypto/ghpush/internal/utils"
)

func TestOpen_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := Open(missing)
	if !errors.Is(err, ghperrors.ErrProjectNotFound) {
		t.Errorf("Open() error = %v, want ErrProjectNotFound", err)
	}
}

func TestOpen_NoConfigFile(t *testing.T) {
	dir := t.TempDir()

	proj, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	cfg := proj.Config()
	if cfg == nil {
		t.Fatal("Config() = nil, want empty config")
	}
	if cfg.Remote != "" || cfg.Branch != "" || len(cfg.Exclude) != 0 {
		t.Errorf("Config() = %+v, want zero value", cfg)
	}
}

func TestOpen_LoadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		Remote:   "upstream",
		Branch:   "release",
		Username: "alice",
		Message:  "Publish",
		Exclude:  []string{"*.log", "dist/**"},
	}
	if err := utils.WriteYAML(filepath.Join(dir, constants.ConfigFileName), cfg); err != nil {
		t.Fatal(err)
	}

	proj, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	got := proj.Config()
	if got.Remote != "upstream" {
		t.Errorf("Remote = %v, want upstream", got.Remote)
	}
	if got.Branch != "release" {
		t.Errorf("Branch = %v, want release", got.Branch)
	}
	if got.Username != "alice" {
		t.Errorf("Username = %v, want alice", got.Username)
	}
	if len(got.Exclude) != 2 {
		t.Errorf("Exclude = %v, want 2 patterns", got.Exclude)
	}
}

func TestOpen_InvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, constants.ConfigFileName)
	if err := os.WriteFile(path, []byte(":\tnot yaml ["), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(dir)
	if err == nil {
		t.Error("Open() expected error for invalid config file")
	}
}

func TestExcluded(t *testing.T) {
	proj := &Project{
		root:   "/tmp/proj",
		config: &Config{Exclude: []string{"*.log", "secrets/**"}},
	}

	tests := []struct {
		path string
		want bool
	}{
		{"debug.log", true},
		{"secrets/key.pem", true},
		{"main.go", false},
	}

	for _, tt := range tests {
		if got := proj.Excluded(tt.path); got != tt.want {
			t.Errorf("Excluded(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFilterStagePaths(t *testing.T) {
	proj := &Project{
		root:   "/tmp/proj",
		config: &Config{Exclude: []string{"*.log"}},
	}

	got := proj.FilterStagePaths([]string{"main.go", "debug.log", "README.md"})
	want := []string{"main.go", "README.md"}

	if len(got) != len(want) {
		t.Fatalf("FilterStagePaths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FilterStagePaths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilterStagePaths_NoExcludes(t *testing.T) {
	proj := &Project{
		root:   "/tmp/proj",
		config: &Config{},
	}

	paths := []string{"main.go", "debug.log"}
	got := proj.FilterStagePaths(paths)
	if len(got) != len(paths) {
		t.Errorf("FilterStagePaths() = %v, want unchanged %v", got, paths)
	}
}
