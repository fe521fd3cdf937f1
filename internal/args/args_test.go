package args

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEscape tests the replacement table for every special character.
func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "cover.jpg", want: "cover.jpg"},
		{name: "space", in: "my file", want: `my\sfile`},
		{name: "quote", in: `say "hi"`, want: `say\s\2hi\2`},
		{name: "colon", in: "a:b", want: `a\cb`},
		{name: "hash", in: "#1", want: `\h1`},
		{name: "backslash", in: `a\b`, want: `a\\b`},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

// TestEscape_BackslashFirst tests that a value holding both a backslash and
// another special character is escaped without double-escaping the inserted
// sequences.
func TestEscape_BackslashFirst(t *testing.T) {
	require.Equal(t, `a\\b\cc`, Escape(`a\b:c`))
	require.Equal(t, `\\\s`, Escape(`\ `))
}

// TestEscape_NotIdempotent tests that escaping twice double-escapes.
func TestEscape_NotIdempotent(t *testing.T) {
	once := Escape("a:b")
	require.Equal(t, `a\\cb`, Escape(once))
}

// TestUnescape_RoundTrip tests that escaped values decode back to the literal
// input and never contain a raw delimiter.
func TestUnescape_RoundTrip(t *testing.T) {
	inputs := []string{"a:b", "a b", "x#y", `c:\dir\file name.ttf`, `"quoted" : # \`}

	for _, in := range inputs {
		escaped := Escape(in)
		require.False(t, strings.ContainsAny(escaped, ": #\""), "escaped %q leaked a delimiter", escaped)

		out, err := Unescape(escaped)
		require.NoError(t, err)
		require.Equal(t, in, out)
	}
}

// TestUnescape_Collision tests that an escaped colon is distinguishable from a
// field separator.
func TestUnescape_Collision(t *testing.T) {
	key, value, found := strings.Cut(`name:a\cb`, ":")
	require.True(t, found)
	require.Equal(t, "name", key)

	decoded, err := Unescape(value)
	require.NoError(t, err)
	require.Equal(t, "a:b", decoded)
}

// TestUnescape_Invalid tests malformed escape sequences.
func TestUnescape_Invalid(t *testing.T) {
	_, err := Unescape(`abc\`)
	require.Error(t, err)

	_, err = Unescape(`a\qb`)
	require.Error(t, err)
}

// TestFlatten tests that tokens are concatenated in order and nil emitters skipped.
func TestFlatten(t *testing.T) {
	got := Flatten(
		Additional{"--verbose"},
		nil,
		Func(func() []string { return []string{"--output", "out.mkv"} }),
		Additional(nil),
	)

	require.Equal(t, []string{"--verbose", "--output", "out.mkv"}, got)
}

// TestAdditional_Copy tests that callers cannot mutate the emitted slice back
// into the builder.
func TestAdditional_Copy(t *testing.T) {
	extra := Additional{"--a", "--b"}
	out := extra.Args()
	out[0] = "--changed"

	require.Equal(t, "--a", extra[0])
}

func TestBool(t *testing.T) {
	require.Equal(t, "1", Bool(true))
	require.Equal(t, "0", Bool(false))
}

func TestAbsPath(t *testing.T) {
	require.Empty(t, AbsPath(""))
	require.True(t, filepath.IsAbs(AbsPath("movie.mkv")))
	require.Equal(t, "/media/movie.mkv", AbsPath("/media/movie.mkv"))
}
