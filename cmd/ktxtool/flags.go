package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/woozymasta/ktx"
)

var (
	logLevel   string
	logFormat  string
	configFile string
)

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "warn",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (text, json)",
			Value:       "text",
			Destination: &logFormat,
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to config file (default: user config dir ktxtool/config.yaml)",
			Destination: &configFile,
		},
	}
}

// setup loads the config file, applies its defaults to flags the user did
// not set and installs the logger.
func setup(c *cli.Command) (Config, error) {
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return Config{}, err
	}
	applyLoggingConfig(c, cfg)

	logger, err := newLogger(os.Stderr, logLevel, logFormat)
	if err != nil {
		return Config{}, err
	}
	ktx.SetLogger(logger)

	return cfg, nil
}

// newLogger builds the process logger from flag values.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (expected text or json)", format)
	}
}
