// Package config loads the YAML configuration shared by the command line
// tools.
//
// The configuration mirrors the library's built-in behavior: every field
// has a default, so an absent file, an empty file, and a file that sets
// only one key all produce a usable Config. Validation rejects values the
// tools cannot act on before any audio file is touched.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the user-tunable defaults for the command line tools.
type Config struct {
	Tags  Tags  `yaml:"tags"`
	Cover Cover `yaml:"cover"`
	Split Split `yaml:"split"`
}

// Tags controls which native tags are rewritten on save.
type Tags struct {
	// Drop names the tag groups stripped when writing a file. An explicit
	// empty list keeps every group; only an absent key takes the default.
	Drop []string `yaml:"drop"`
}

// Cover bounds embedded artwork.
type Cover struct {
	// MinSize is the smallest acceptable pixel dimension. Covers below it
	// are reported, not rejected.
	MinSize int `yaml:"minsize"`

	// MaxSize is the largest pixel dimension kept when rewriting artwork.
	// Larger covers are scaled down to fit.
	MaxSize int `yaml:"maxsize"`

	// FileSize is the encoded size in bytes above which a cover is
	// reported as oversized.
	FileSize int `yaml:"filesize"`
}

// Split controls how multi-value credits typed as a single string are
// divided into list entries.
type Split struct {
	// Disabled keeps credit and genre values whole.
	Disabled bool `yaml:"disabled"`

	// Separators holds the runes that divide one value from the next,
	// as a single string.
	Separators string `yaml:"separators"`
}

// Default returns a configuration with every field at its default value.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses YAML data into a Config, fills defaults for absent keys,
// and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	// nil means the key was absent; an unmarshalled empty list stays empty.
	if cfg.Tags.Drop == nil {
		cfg.Tags.Drop = []string{"comment", "legal", "rating", "url"}
	}
	if cfg.Cover.MinSize == 0 {
		cfg.Cover.MinSize = 500
	}
	if cfg.Cover.MaxSize == 0 {
		cfg.Cover.MaxSize = 1000
	}
	if cfg.Cover.FileSize == 0 {
		cfg.Cover.FileSize = 250 * 1024
	}
	if cfg.Split.Separators == "" {
		cfg.Split.Separators = ",&/"
	}
}

func validate(cfg *Config) error {
	for _, group := range cfg.Tags.Drop {
		if group == "" {
			return errors.New("tags.drop holds an empty group name")
		}
	}
	if cfg.Cover.MinSize < 0 {
		return fmt.Errorf("cover.minsize is negative: %d", cfg.Cover.MinSize)
	}
	if cfg.Cover.MaxSize < 0 {
		return fmt.Errorf("cover.maxsize is negative: %d", cfg.Cover.MaxSize)
	}
	if cfg.Cover.MinSize > cfg.Cover.MaxSize {
		return fmt.Errorf("cover.minsize %d exceeds cover.maxsize %d",
			cfg.Cover.MinSize, cfg.Cover.MaxSize)
	}
	if cfg.Cover.FileSize < 0 {
		return fmt.Errorf("cover.filesize is negative: %d", cfg.Cover.FileSize)
	}
	return nil
}
