package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader reads generation configs from YAML files through an fs.FS.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader rooted at a filesystem path.
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a loader over an arbitrary fs.FS.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadGeneration loads and parses one generation config file.
func (l *Loader) LoadGeneration(name string) (*GenerationConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return cfg, nil
}

// Parse decodes a generation config from YAML bytes.
func Parse(data []byte) (*GenerationConfig, error) {
	var cfg GenerationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse generation config: %w", err)
	}
	return &cfg, nil
}
