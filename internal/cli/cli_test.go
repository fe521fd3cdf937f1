package cli

import (
	"context"
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wagiedev/mkvtoolnix-go/internal/errors"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell scripts require a Unix shell")
	}

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))

	return path
}

// TestDiscoverer_NotFound tests that a configured directory without the
// binary returns BinaryNotFoundError naming only that directory.
func TestDiscoverer_NotFound(t *testing.T) {
	dir := t.TempDir()
	discoverer := NewDiscoverer(&Config{Dir: dir, Logger: slog.Default()})

	_, err := discoverer.Discover(context.Background(), Merge)

	require.Error(t, err)
	require.IsType(t, &errors.BinaryNotFoundError{}, err)

	notFound, ok := stderrors.AsType[*errors.BinaryNotFoundError](err)
	require.True(t, ok)
	require.Equal(t, "mkvmerge", notFound.Binary)
	require.Equal(t, []string{filepath.Join(dir, "mkvmerge")}, notFound.SearchedPaths)
}

// TestDiscoverer_ConfiguredDir tests discovery inside a configured directory.
func TestDiscoverer_ConfiguredDir(t *testing.T) {
	dir := t.TempDir()
	want := writeScript(t, dir, "mkvpropedit", "exit 0")

	discoverer := NewDiscoverer(&Config{Dir: dir})

	got, err := discoverer.Discover(context.Background(), PropEdit)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// A second lookup is served from memory even if the file disappears.
	require.NoError(t, os.Remove(want))

	again, err := discoverer.Discover(context.Background(), PropEdit)
	require.NoError(t, err)
	require.Equal(t, want, again)
}

// TestDiscoverer_NonExecutable tests that a plain file is not accepted.
func TestDiscoverer_NonExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bits are not meaningful on Windows")
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mkvextract"), []byte("data"), 0o644))

	_, err := NewDiscoverer(&Config{Dir: dir}).Discover(context.Background(), Extract)
	require.IsType(t, &errors.BinaryNotFoundError{}, err)
}

// TestDiscoverer_PathSearch tests that PATH is consulted when no directory is configured.
func TestDiscoverer_PathSearch(t *testing.T) {
	dir := t.TempDir()
	want := writeScript(t, dir, "mkvmerge", "exit 0")
	t.Setenv("PATH", dir)

	got, err := NewDiscoverer(nil).Discover(context.Background(), Merge)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name   string
		banner string
		want   VersionInfo
	}{
		{
			name:   "with bits",
			banner: "mkvmerge v32.0.0 ('Astral Progressions') 64-bit",
			want: VersionInfo{
				Program:  "mkvmerge",
				Version:  Version{Major: 32, Minor: 0, Patch: 0},
				Codename: "Astral Progressions",
				Bits:     64,
			},
		},
		{
			name:   "without bits",
			banner: "mkvpropedit v9.8.0 ('Kuglblitz')",
			want: VersionInfo{
				Program:  "mkvpropedit",
				Version:  Version{Major: 9, Minor: 8, Patch: 0},
				Codename: "Kuglblitz",
			},
		},
		{
			name:   "two components",
			banner: "mkvextract v81.0 ('Milliontown') 64-bit\n",
			want:   VersionInfo{},
		},
		{
			name:   "multi line",
			banner: "mkvextract v80.0.1 ('Roundabout') 32-bit\nextra line\n",
			want: VersionInfo{
				Program:  "mkvextract",
				Version:  Version{Major: 80, Minor: 0, Patch: 1},
				Codename: "Roundabout",
				Bits:     32,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(Merge, tt.banner)
			if tt.want == (VersionInfo{}) {
				require.Error(t, err)
				require.IsType(t, &errors.VersionParseError{}, err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	v := Version{Major: 32, Minor: 1, Patch: 0}

	require.Equal(t, 0, v.Compare(v))
	require.Equal(t, -1, v.Compare(Version{Major: 33}))
	require.Equal(t, 1, v.Compare(Version{Major: 32, Minor: 0, Patch: 9}))
	require.Equal(t, -1, v.Compare(Version{Major: 32, Minor: 1, Patch: 1}))
	require.Equal(t, "32.1.0", v.String())
}

// TestReadVersion tests running a fake binary's --version.
func TestReadVersion(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "mkvmerge", `echo "mkvmerge v70.0.0 ('Caught In The Net') 64-bit"`)

	info, err := ReadVersion(context.Background(), Merge, path)
	require.NoError(t, err)
	require.Equal(t, Version{Major: 70}, info.Version)
	require.Equal(t, "Caught In The Net", info.Codename)
}

// TestReadVersion_Garbage tests that an unrecognised banner is a parse error.
func TestReadVersion_Garbage(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "mkvmerge", `echo "not a version"`)

	_, err := ReadVersion(context.Background(), Merge, path)
	require.IsType(t, &errors.VersionParseError{}, err)
}
