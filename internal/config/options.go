package config

import (
	"log/slog"
	"maps"
	"os"
	"slices"
)

// Options configures how the toolkit binaries are located and run.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// ToolnixPath is the directory holding mkvmerge, mkvpropedit and mkvextract.
	// If empty, the binaries are searched in PATH and common install locations.
	ToolnixPath string

	// Env provides additional environment variables for every spawned process.
	Env map[string]string

	// Cwd sets the working directory of spawned processes.
	Cwd string

	// RawOutput disables UTF-8 decoding of process output. Lines are then
	// passed through byte for byte.
	RawOutput bool
}

// Environ returns the process environment extended with Env. Keys from Env
// are appended in sorted order so that they override inherited values.
func (o *Options) Environ() []string {
	env := os.Environ()

	for _, k := range slices.Sorted(maps.Keys(o.Env)) {
		env = append(env, k+"="+o.Env[k])
	}

	return env
}
