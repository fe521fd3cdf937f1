package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, defaultFileConfig(), cfg)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`toolnix_path = "/opt/mkvtoolnix"
log_level = "debug"
`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "/opt/mkvtoolnix", cfg.ToolnixPath)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`toolnix_dir = "/opt"`), 0o644))

	_, err := loadConfig(path)
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	log, err := newLogger(&buf, "info", "json")
	require.NoError(t, err)
	log.Debug("hidden")
	log.Info("shown", "binary", "mkvmerge")
	require.Contains(t, buf.String(), `"binary":"mkvmerge"`)
	require.NotContains(t, buf.String(), "hidden")

	_, err = newLogger(&buf, "loud", "text")
	require.Error(t, err)

	_, err = newLogger(&buf, "warn", "yaml")
	require.Error(t, err)

	level, err := parseLevel("ERROR")
	require.NoError(t, err)
	require.Equal(t, slog.LevelError, level)
}
