package mkvtoolnix

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const fakeMerge = `case "$1" in
--version)
  echo "mkvmerge v90.0.0 ('Hanging On') 64-bit"
  ;;
--list-languages)
  echo x >> "$MKVTK_LANG_COUNTER"
  echo "English language name | ISO 639-3 code | ISO 639-2 code | ISO 639-1 code"
  echo "----------------------+----------------+----------------+---------------"
  echo "English               | eng            | eng            | en"
  echo "German                | deu            | ger            | de"
  echo "Italian               | ita            | ita            | it"
  ;;
--identify)
  cat <<JSON
{
  "file_name": "$3",
  "container": {"recognized": true, "supported": true, "type": "Matroska"},
  "tracks": [
    {"id": 0, "type": "video", "codec": "AVC/H.264/MPEG-4p10"},
    {"id": 1, "type": "audio", "codec": "AAC", "properties": {"language": "ita"}}
  ],
  "errors": [],
  "warnings": []
}
JSON
  ;;
*)
  echo "WARNING: The file '/in.mkv' has a broken header."
  echo "Progress: 50%"
  echo "Progress: 100%"
  echo "Multiplexing took 1 second."
  ;;
esac`

func writeTool(t *testing.T, dir string, binary Binary, body string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell scripts require a Unix shell")
	}

	path := filepath.Join(dir, binary.String())
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
}

func newFakeToolnix(t *testing.T) (*Toolnix, string) {
	t.Helper()

	dir := t.TempDir()
	counter := filepath.Join(t.TempDir(), "languages")

	writeTool(t, dir, BinaryMerge, fakeMerge)
	writeTool(t, dir, BinaryPropEdit, `case "$1" in
--version) echo "mkvpropedit v90.0.0 ('Hanging On') 64-bit" ;;
*) echo "The file is being analyzed."; echo "ERROR: No track with the number 9 was found." >&2; exit 2 ;;
esac`)
	writeTool(t, dir, BinaryExtract, `echo "mkvextract v90.0.0 ('Hanging On') 64-bit"`)

	tk := New(
		WithToolnixPath(dir),
		WithEnv(map[string]string{"MKVTK_LANG_COUNTER": counter}),
	)

	return tk, counter
}

func TestIdentify(t *testing.T) {
	tk, _ := newFakeToolnix(t)

	info, err := tk.Identify(context.Background(), "/media/movie.mkv")
	require.NoError(t, err)
	require.Equal(t, "/media/movie.mkv", info.FileName)
	require.Equal(t, "Matroska", info.Container.Type)
	require.Len(t, info.Tracks, 2)

	audio := info.Tracks[1]
	require.Equal(t, TrackTypeAudio, audio.Type)
	require.Equal(t, "ita", audio.LanguageCode())
	require.Same(t, info, audio.FileIdentification())

	source, err := audio.SourceFile()
	require.NoError(t, err)
	require.Equal(t, "/media/movie.mkv", source)
}

func TestIdentifyAll(t *testing.T) {
	tk, _ := newFakeToolnix(t)

	files := []string{"/a.mkv", "/b.mkv", "/c.mkv"}

	infos, err := tk.IdentifyAll(context.Background(), files, 2)
	require.NoError(t, err)
	require.Len(t, infos, 3)

	for i, info := range infos {
		require.Equal(t, files[i], info.FileName)
	}
}

func TestIdentifyAll_NotFound(t *testing.T) {
	tk := New(WithToolnixPath(t.TempDir()))

	_, err := tk.IdentifyAll(context.Background(), []string{"/a.mkv"}, 0)
	require.Error(t, err)

	notFound, ok := errors.AsType[*BinaryNotFoundError](err)
	require.True(t, ok)
	require.Equal(t, "mkvmerge", notFound.Binary)
}

func TestVersions(t *testing.T) {
	tk, _ := newFakeToolnix(t)

	versions, err := tk.Versions(context.Background())
	require.NoError(t, err)
	require.Len(t, versions, 3)
	require.Equal(t, "mkvmerge", versions[0].Program)
	require.Equal(t, "mkvpropedit", versions[1].Program)
	require.Equal(t, "mkvextract", versions[2].Program)
	require.Equal(t, Version{Major: 90}, versions[0].Version)
	require.Equal(t, 64, versions[0].Bits)
}

// TestLanguages_LoadedOnce tests that concurrent first lookups spawn
// mkvmerge --list-languages a single time.
func TestLanguages_LoadedOnce(t *testing.T) {
	tk, counter := newFakeToolnix(t)

	var wg sync.WaitGroup

	for range 8 {
		wg.Go(func() {
			l, err := tk.LookupLanguage(context.Background(), "de")
			require.NoError(t, err)
			require.Equal(t, "ger", l.Code())
		})
	}

	wg.Wait()

	data, err := os.ReadFile(counter)
	require.NoError(t, err)
	require.Equal(t, "x\n", string(data))

	table, err := tk.Languages(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())
}

func TestLookupLanguage_Unknown(t *testing.T) {
	tk, _ := newFakeToolnix(t)

	_, err := tk.LookupLanguage(context.Background(), "xx")
	require.ErrorIs(t, err, ErrUnknownLanguage)

	unknown, ok := errors.AsType[*UnknownLanguageError](err)
	require.True(t, ok)
	require.Equal(t, "xx", unknown.Code)
}

func TestExecute_PropEditFailure(t *testing.T) {
	tk, _ := newFakeToolnix(t)

	cmd := NewPropEditCommand("/media/movie.mkv").
		EditTrackByNumber(9, func(e *PropertyEdit) { e.SetName("x") })

	res, err := tk.Execute(context.Background(), cmd)
	require.Error(t, err)
	require.False(t, res.Success())

	perr, ok := errors.AsType[*PropEditError](err)
	require.True(t, ok)
	require.Equal(t, "No track with the number 9 was found.", perr.Result.Errors()[0].Text)

	cerr, ok := errors.AsType[*CommandError](err)
	require.True(t, ok)
	require.Equal(t, BinaryPropEdit, cerr.Binary)

	_, ok = errors.AsType[MkvToolnixError](err)
	require.True(t, ok)
}

// TestCheckResult_UnreadErrorLine tests that an ERROR line printed by a
// process exiting with 0 fails the check even when no line was read yet.
func TestCheckResult_UnreadErrorLine(t *testing.T) {
	dir := t.TempDir()
	writeTool(t, dir, BinaryPropEdit, `echo "ERROR: bad selector"
exit 0`)

	tk := New(WithToolnixPath(dir))

	res, err := tk.Start(context.Background(), NewPropEditCommand("/media/movie.mkv"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = res.Close() })

	select {
	case <-res.Exited():
	case <-time.After(5 * time.Second):
		t.Fatal("process did not exit")
	}

	err = CheckResult(res)
	require.Error(t, err)

	_, ok := errors.AsType[*PropEditError](err)
	require.True(t, ok)
	require.Contains(t, err.Error(), "bad selector")
}

func TestExecute_MergeSuccess(t *testing.T) {
	tk, _ := newFakeToolnix(t)

	cmd := NewMergeCommand("/out.mkv").AddInputFile("/in.mkv", nil)

	res, err := tk.Execute(context.Background(), cmd)
	require.NoError(t, err)
	require.True(t, res.Success())
	require.Len(t, res.Warnings(), 1)

	var progress []int
	for pct := range Progress(res.Lines()) {
		progress = append(progress, pct)
	}

	require.Equal(t, []int{50, 100}, progress)
}

func TestExecuteAndPrint(t *testing.T) {
	tk, _ := newFakeToolnix(t)

	var buf bytes.Buffer

	cmd := NewPropEditCommand("/media/movie.mkv").
		EditTrackByNumber(9, func(e *PropertyEdit) { e.SetName("x") })

	res, err := tk.ExecuteAndPrint(context.Background(), cmd, &buf, PrintOptions{
		Command:  true,
		Output:   true,
		ExitCode: true,
	})
	require.NoError(t, err)
	require.False(t, res.Success())

	require.Equal(t, strings.Join([]string{
		"mkvpropedit /media/movie.mkv --edit track:@9 --set name=x",
		"The file is being analyzed.",
		"ERROR: No track with the number 9 was found.",
		"Exit code: 2",
		"",
	}, "\n"), buf.String())
}

func TestExecuteAndPrint_Quiet(t *testing.T) {
	tk, _ := newFakeToolnix(t)

	var buf bytes.Buffer

	res, err := tk.ExecuteAndPrint(context.Background(), NewMergeCommand("/out.mkv"), &buf, PrintOptions{})
	require.NoError(t, err)
	require.True(t, res.Success())
	require.Empty(t, buf.String())
}

func TestCommandLine(t *testing.T) {
	cmd := NewExtractCommand("/a.mkv").Tags("/t.xml")
	require.Equal(t, "mkvextract /a.mkv tags /t.xml", CommandLine(cmd))
}

func TestBinaryPath(t *testing.T) {
	tk, _ := newFakeToolnix(t)

	path, err := tk.BinaryPath(context.Background(), BinaryExtract)
	require.NoError(t, err)
	require.Equal(t, "mkvextract", filepath.Base(path))
}
