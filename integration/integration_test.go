//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	mkvtoolnix "github.com/wagiedev/mkvtoolnix-go"
)

const subtitleText = `1
00:00:00,000 --> 00:00:01,500
Hello there.

2
00:00:02,000 --> 00:00:03,500
General Kenobi.
`

// newToolnix returns a Toolnix, honoring MKVTOOLNIX_PATH, and skips the
// test when mkvmerge cannot be found.
func newToolnix(t *testing.T) *mkvtoolnix.Toolnix {
	t.Helper()

	var opts []mkvtoolnix.Option
	if dir := os.Getenv("MKVTOOLNIX_PATH"); dir != "" {
		opts = append(opts, mkvtoolnix.WithToolnixPath(dir))
	}

	tk := mkvtoolnix.New(opts...)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := tk.BinaryPath(ctx, mkvtoolnix.BinaryMerge)
	skipIfNotInstalled(t, err)
	require.NoError(t, err)

	return tk
}

// skipIfNotInstalled skips the test if err reports a missing binary.
func skipIfNotInstalled(t *testing.T, err error) {
	t.Helper()

	if _, ok := errors.AsType[*mkvtoolnix.BinaryNotFoundError](err); ok {
		t.Skip("mkvtoolnix not installed")
	}
}

func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	t.Cleanup(cancel)

	return ctx
}

// makeMatroska muxes a generated SubRip file into a new Matroska file and
// returns its path. The single subtitle track is German and named "Dialog".
func makeMatroska(t *testing.T, tk *mkvtoolnix.Toolnix) string {
	t.Helper()

	dir := t.TempDir()
	srt := filepath.Join(dir, "dialog.srt")
	require.NoError(t, os.WriteFile(srt, []byte(subtitleText), 0o600))

	out := filepath.Join(dir, "sample.mkv")

	cmd := mkvtoolnix.NewMergeCommand(out).
		GlobalOptions(func(o *mkvtoolnix.MergeGlobalOptions) {
			o.Title = "Sample"
		}).
		AddInputFile(srt, func(f *mkvtoolnix.InputFile) {
			f.EditTrackByID(0, func(o *mkvtoolnix.TrackOptions) {
				o.Language = "ger"
				o.SetName("Dialog")
				o.SetDefault(true)
			})
		})

	_, err := tk.Execute(testContext(t), cmd)
	require.NoError(t, err)

	return out
}
