package cli

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/wagiedev/mkvtoolnix-go/internal/errors"
)

// Config holds configuration for binary discovery.
type Config struct {
	// Dir is the directory holding the mkvtoolnix binaries.
	// If empty, discovery searches PATH and common locations.
	Dir string

	// Logger is an optional logger for discovery operations.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// Discoverer locates mkvtoolnix binaries.
type Discoverer interface {
	// Discover returns the path of binary or a *errors.BinaryNotFoundError.
	Discover(ctx context.Context, binary Binary) (string, error)
}

// discoverer implements the Discoverer interface.
type discoverer struct {
	cfg Config
	log *slog.Logger

	mu    sync.Mutex
	found map[Binary]string
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a discoverer. Successful lookups are remembered for
// the lifetime of the discoverer.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &discoverer{
		cfg:   *cfg,
		log:   log.With("component", "discovery"),
		found: make(map[Binary]string, 3),
	}
}

// Discover locates binary.
func (d *discoverer) Discover(_ context.Context, binary Binary) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if path, ok := d.found[binary]; ok {
		return path, nil
	}

	path, err := d.find(binary)
	if err != nil {
		d.log.Error("Failed to find binary", "binary", binary, "error", err)

		return "", err
	}

	d.log.Debug("Found binary", "binary", binary, "path", path)
	d.found[binary] = path

	return path, nil
}

func (d *discoverer) find(binary Binary) (string, error) {
	name := binary.executable()

	// A configured directory is used and only it
	if d.cfg.Dir != "" {
		path := filepath.Join(d.cfg.Dir, name)
		if isExecutableFile(path) {
			return path, nil
		}

		return "", &errors.BinaryNotFoundError{Binary: string(binary), SearchedPaths: []string{path}}
	}

	searchedPaths := make([]string, 0, 4)

	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}

	searchedPaths = append(searchedPaths, "$PATH")

	for _, dir := range commonDirs() {
		path := filepath.Join(dir, name)
		searchedPaths = append(searchedPaths, path)

		if isExecutableFile(path) {
			return path, nil
		}
	}

	d.log.Warn("Binary not found in any searched paths", "binary", binary, "searched_paths", searchedPaths)

	return "", &errors.BinaryNotFoundError{Binary: string(binary), SearchedPaths: searchedPaths}
}

func commonDirs() []string {
	return []string{
		"/usr/local/bin",
		"/usr/bin",
		"/opt/homebrew/bin",
		"/Applications/MKVToolNix.app/Contents/MacOS",
	}
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	return info.Mode()&0o111 != 0 || filepath.Ext(path) == ".exe"
}
