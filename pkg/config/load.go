// Package config handles configuration loading and validation for ncu.
// It supports an optional YAML file (.ncu.yml) next to package.json and the
// per-run mode options taken from the command line.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ajxudir/ncu/pkg/constants"
	"github.com/ajxudir/ncu/pkg/verbose"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from the specified path or defaults.
//
// If configPath is provided, it loads that specific config file and fails if it
// is missing. Otherwise, it looks for .ncu.yml in the working directory.
// If no config is found, it returns the built-in default configuration.
//
// Parameters:
//   - configPath: path to the config file, or empty to use the working directory lookup
//   - workDir: directory holding the manifest
//
// Returns:
//   - *Config: the loaded configuration with defaults applied
//   - error: any error encountered during loading or validation
func LoadConfig(configPath, workDir string) (*Config, error) {
	var cfg *Config

	if configPath != "" {
		verbose.Infof("Loading config from: %s", configPath)
		loaded, err := loadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
		cfg = loaded
		verbose.ConfigLoaded(configPath)
	} else {
		localConfig := filepath.Join(workDir, constants.DefaultConfigName)
		if _, err := os.Stat(localConfig); err == nil {
			verbose.Infof("Found local config: %s", localConfig)
			loaded, err := loadConfigFile(localConfig)
			if err != nil {
				return nil, fmt.Errorf("failed to load config %s: %w", localConfig, err)
			}
			cfg = loaded
			verbose.ConfigLoaded(localConfig)
		}

		if cfg == nil {
			verbose.Info("Using built-in default configuration")
			cfg = Default()
		}
	}

	cfg.WorkingDir = workDir
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// loadConfigFile reads a config file, enforcing DefaultMaxConfigFileSize.
//
// Parameters:
//   - path: path to the config file
//
// Returns:
//   - *Config: the parsed configuration
//   - error: error if file is too large, not found, or has invalid YAML
func loadConfigFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > DefaultMaxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)", info.Size(), DefaultMaxConfigFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return loadConfigData(data)
}

// loadConfigData parses YAML configuration data.
//
// Unknown keys are rejected so typos surface instead of being ignored.
// An empty document yields an empty Config.
//
// Parameters:
//   - data: YAML configuration data as bytes
//
// Returns:
//   - *Config: the parsed configuration
//   - error: error if YAML is invalid or contains unknown fields
func loadConfigData(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return &cfg, nil
}
