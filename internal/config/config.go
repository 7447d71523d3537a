// Package config loads the optional eventdesk YAML configuration file.
//
// Flags override config values; a missing file falls back to defaults, so
// the tool works with no configuration at all.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// BaseURL is the root of the events REST API.
	BaseURL string `yaml:"base_url"`

	// DataDir holds the offline snapshot cache.
	DataDir string `yaml:"data_dir"`

	// Format is the default output format: "text" or "json".
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseURL: "http://localhost:3000",
		DataDir: "~/.local/share/eventdesk",
		Format:  "text",
	}
}

// Normalize fills in missing values so a partially-filled config behaves
// like the default.
func (c *Config) Normalize() {
	d := Default()
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.DataDir == "" {
		c.DataDir = d.DataDir
	}
	switch c.Format {
	case "text", "json":
	default:
		c.Format = d.Format
	}
}

// Load reads configuration from the given YAML path. A missing file is not
// an error: the defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Normalize()

	return &cfg, nil
}
