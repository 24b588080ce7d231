package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the ktxtool configuration file (~/.config/ktxtool/config.yaml).
// Pointer fields distinguish "not set" from zero values.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Pack defaults
	Format          string `yaml:"format"`
	MaxMipMaps      *int   `yaml:"max_mipmaps"`
	Fast            *bool  `yaml:"fast"`
	LZ4             *bool  `yaml:"lz4"`
	HighCompression *bool  `yaml:"high_compression"`
	Orientation     string `yaml:"orientation"`
	Writer          string `yaml:"writer"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ktxtool", "config.yaml")
}

// LoadConfig reads the config file at path, or the default location when
// path is empty. A missing default file yields a zero Config; a missing
// explicit file is an error.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = configPath()
		if path == "" {
			return Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// applyLoggingConfig applies config file defaults to logging flags
// when the corresponding CLI flag was not explicitly set.
func applyLoggingConfig(c *cli.Command, cfg Config) {
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}

// applyPackConfig applies config file defaults to pack command variables.
func applyPackConfig(c *cli.Command, cfg Config, p *packSettings) {
	if cfg.Format != "" && !c.IsSet("format") {
		p.format = cfg.Format
	}
	if cfg.MaxMipMaps != nil && !c.IsSet("mips") {
		p.maxMipMaps = *cfg.MaxMipMaps
	}
	if cfg.Fast != nil && !c.IsSet("fast") {
		p.fast = *cfg.Fast
	}
	if cfg.LZ4 != nil && !c.IsSet("lz4") {
		p.lz4 = *cfg.LZ4
	}
	if cfg.HighCompression != nil && !c.IsSet("high") {
		p.high = *cfg.HighCompression
	}
	if cfg.Orientation != "" && !c.IsSet("orientation") {
		p.orientation = cfg.Orientation
	}
	if cfg.Writer != "" && !c.IsSet("writer") {
		p.writer = cfg.Writer
	}
}
