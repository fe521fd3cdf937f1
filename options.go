package mkvtoolnix

import (
	"log/slog"
	"maps"

	"github.com/wagiedev/mkvtoolnix-go/internal/config"
)

// Options configures a Toolnix client.
type Options = config.Options

// Option configures Options using the functional options pattern.
type Option func(*Options)

func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = NopLogger()
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithToolnixPath sets the directory holding the mkvtoolnix binaries.
// If not set, the binaries are searched in PATH and common install locations.
func WithToolnixPath(dir string) Option {
	return func(o *Options) {
		o.ToolnixPath = dir
	}
}

// WithEnv adds environment variables to every spawned process.
func WithEnv(env map[string]string) Option {
	return func(o *Options) {
		if o.Env == nil {
			o.Env = make(map[string]string, len(env))
		}

		maps.Copy(o.Env, env)
	}
}

// WithCwd sets the working directory of spawned processes.
func WithCwd(cwd string) Option {
	return func(o *Options) {
		o.Cwd = cwd
	}
}

// WithOutputDecoder enables or disables UTF-8 decoding of process output.
// Decoding is enabled by default.
func WithOutputDecoder(enabled bool) Option {
	return func(o *Options) {
		o.RawOutput = !enabled
	}
}
