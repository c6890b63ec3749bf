// Package local manages the local project directory and its optional configuration.
package local

import (
	"fmt"
	"path/filepath"

	"github.com/om270459-crypto/ghpush/internal/constants"
	ghperrors "github.com/om270459-crypto/ghpush/internal/errors"
	"github.com/om270459-crypto/ghpush/internal/utils"
)

// Project represents the local project directory being published.
type Project struct {
	root   string  // Project root directory
	config *Config // Loaded configuration (never nil)
}

// Open opens a project directory, loading .ghpush.yaml when present.
// The directory must exist; the configuration file is optional.
func Open(root string) (*Project, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}

	if !utils.DirExists(absRoot) {
		return nil, fmt.Errorf("%w: %s", ghperrors.ErrProjectNotFound, root)
	}

	config := &Config{}
	configPath := filepath.Join(absRoot, constants.ConfigFileName)
	if utils.FileExists(configPath) {
		loaded, err := utils.ReadYAMLFile[Config](configPath)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		config = loaded
	}

	return &Project{
		root:   absRoot,
		config: config,
	}, nil
}

// Root returns the project root directory.
func (p *Project) Root() string {
	return p.root
}

// Config returns the loaded configuration.
func (p *Project) Config() *Config {
	return p.config
}

// Excluded reports whether a path matches any configured exclude pattern.
func (p *Project) Excluded(path string) bool {
	return utils.MatchAnyPattern(p.config.Exclude, path)
}

// FilterStagePaths drops excluded paths from a list of changed paths.
func (p *Project) FilterStagePaths(paths []string) []string {
	if len(p.config.Exclude) == 0 {
		return paths
	}
	var kept []string
	for _, path := range paths {
		if !p.Excluded(path) {
			kept = append(kept, path)
		}
	}
	return kept
}
