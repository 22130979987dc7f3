package config

import (
	"path/filepath"

	"github.com/ajxudir/ncu/pkg/constants"
)

// DefaultMaxConfigFileSize caps the size of a config file read from disk.
const DefaultMaxConfigFileSize int64 = 1 << 20

// Config is the root configuration structure, loaded from .ncu.yml.
//
// Fields:
//   - Registry: Base URL of the npm-compatible registry
//   - Manifest: Manifest file name inside WorkingDir
//   - Concurrency: Maximum in-flight registry requests, 0 for unbounded
//   - WorkingDir: Directory holding the manifest; set from the CLI, never from YAML
type Config struct {
	Registry    string `yaml:"registry,omitempty"`
	Manifest    string `yaml:"manifest,omitempty"`
	Concurrency int    `yaml:"concurrency,omitempty"`

	// WorkingDir is a runtime value set by the --dir flag.
	WorkingDir string `yaml:"-"`
}

// Default returns the built-in configuration used when no .ncu.yml exists.
//
// Returns:
//   - *Config: Configuration pointing at the public npm registry and package.json
func Default() *Config {
	return &Config{
		Registry:   constants.DefaultRegistryURL,
		Manifest:   constants.DefaultManifestName,
		WorkingDir: ".",
	}
}

// ManifestPath returns the manifest location derived from WorkingDir and Manifest.
//
// Returns:
//   - string: Path to the manifest file, e.g. "./package.json"
func (c *Config) ManifestPath() string {
	dir := c.WorkingDir
	if dir == "" {
		dir = "."
	}
	name := c.Manifest
	if name == "" {
		name = constants.DefaultManifestName
	}
	return filepath.Join(dir, name)
}

// applyDefaults fills unset fields with built-in values.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Registry == "" {
		c.Registry = def.Registry
	}
	if c.Manifest == "" {
		c.Manifest = def.Manifest
	}
	if c.WorkingDir == "" {
		c.WorkingDir = def.WorkingDir
	}
}
