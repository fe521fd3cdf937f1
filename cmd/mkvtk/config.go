package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the content of config.toml.
type fileConfig struct {
	ToolnixPath string `toml:"toolnix_path"`
	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{LogLevel: "warn", LogFormat: "text"}
}

func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}

	return filepath.Join(dir, "mkvtk", "config.toml"), nil
}

// loadConfig reads path, or the default location when path is empty. A
// missing file yields the defaults.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()

	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, err
		}

		path = p
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return level, fmt.Errorf("invalid log level %q", s)
	}

	return level, nil
}

// newLogger builds the CLI logger writing to w in text or json format.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
