package subprocess

import (
	"bufio"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Line
		keep bool
	}{
		{"warning", "WARNING: foo", Line{Text: "foo", Kind: KindWarning}, true},
		{"error", "ERROR: bar", Line{Text: "bar", Kind: KindError}, true},
		{"error without space", "ERROR:bar", Line{Text: "bar", Kind: KindError}, true},
		{"error with tab", "ERROR:\t\tbar baz ", Line{Text: "bar baz ", Kind: KindError}, true},
		{"plain", "Muxing took 2 seconds.", Line{Text: "Muxing took 2 seconds.", Kind: KindInfo}, true},
		{"blank info kept", "", Line{Text: "", Kind: KindInfo}, true},
		{"blank warning dropped", "WARNING:   ", Line{}, false},
		{"bare error dropped", "ERROR:", Line{}, false},
		{"prefix is case sensitive", "warning: foo", Line{Text: "warning: foo", Kind: KindInfo}, true},
		{"prefix must start the line", " WARNING: foo", Line{Text: " WARNING: foo", Kind: KindInfo}, true},
		{"progress", "Progress: 42%", Line{Text: "Progress: 42%", Kind: KindProgress}, true},
		{"gui progress", "#GUI#progress 100%", Line{Text: "#GUI#progress 100%", Kind: KindProgress}, true},
		{"progress text", "Progress report follows", Line{Text: "Progress report follows", Kind: KindInfo}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.raw)
			require.Equal(t, tt.keep, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLine_Percent(t *testing.T) {
	l, _ := Classify("Progress: 7%")
	pct, ok := l.Percent()
	require.True(t, ok)
	require.Equal(t, 7, pct)

	_, ok = Line{Text: "Progress: 7%", Kind: KindInfo}.Percent()
	require.False(t, ok)
}

func TestLineKind_String(t *testing.T) {
	require.Equal(t, "INFO", KindInfo.String())
	require.Equal(t, "WARNING", KindWarning.String())
	require.Equal(t, "ERROR", KindError.String())
	require.Equal(t, "PROGRESS", KindProgress.String())
}

func TestLineSplitter(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "newline", in: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", in: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "lone cr", in: "a\rb\rc", want: []string{"a", "b", "c"}},
		{name: "cr then crlf", in: "P: 1%\rP: 2%\r\ndone\n", want: []string{"P: 1%", "P: 2%", "done"}},
		{name: "blank lines kept", in: "a\n\r\n\nb", want: []string{"a", "", "", "b"}},
		{name: "no trailing newline", in: "tail", want: []string{"tail"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// One byte per read puts every "\r" at the end of the buffer.
			for _, r := range []io.Reader{strings.NewReader(tt.in), iotest.OneByteReader(strings.NewReader(tt.in))} {
				scanner := bufio.NewScanner(r)
				scanner.Split((&lineSplitter{}).split)

				var got []string
				for scanner.Scan() {
					got = append(got, scanner.Text())
				}

				require.NoError(t, scanner.Err())
				require.Equal(t, tt.want, got)
			}
		})
	}
}
