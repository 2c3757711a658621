package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/restmap-cli/restmap/core/logger"
	"gopkg.in/yaml.v3"
)

const FileName = "restmap.yaml"

type Config struct {
	Scan   Scan   `yaml:"scan"`
	Output Output `yaml:"output"`
}

type Scan struct {
	// Exclude lists directory names skipped in addition to hidden
	// directories, which are always skipped.
	Exclude []string `yaml:"exclude"`
	// Lenient turns unknown mapping annotations into warnings instead of
	// aborting the scan.
	Lenient bool `yaml:"lenient"`
}

type Output struct {
	Format string `yaml:"format"`
}

func Default() *Config {
	return &Config{
		Scan: Scan{
			Exclude: []string{"node_modules", "target", "build", "dist"},
			Lenient: false,
		},
		Output: Output{
			Format: "text",
		},
	}
}

func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working dir: %w", err)
	}

	return LoadFrom(filepath.Join(wd, FileName))
}

// LoadFrom reads the config at path, falling back to defaults when the file
// does not exist.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		logger.Debug("No config file found, using default config")
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	logger.Debug("Config file found: %s", path)
	logger.Debug("Config: %+v", cfg)

	return cfg, nil
}

// Write saves cfg as yaml at path. Used by `restmap init` to lay down a
// starting config.
func (c *Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
