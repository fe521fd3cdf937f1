package args

import (
	"path/filepath"
	"slices"
)

// Emitter produces an ordered sequence of command-line tokens.
//
// The order of the returned tokens is significant: the mkvtoolnix tools are
// argv-positional and a token must never be reordered after emission.
type Emitter interface {
	Args() []string
}

// Func adapts an ordinary function to the Emitter interface.
type Func func() []string

// Args implements Emitter.
func (f Func) Args() []string { return f() }

// Additional is a free-form list of tokens appended verbatim.
type Additional []string

// Args implements Emitter.
func (a Additional) Args() []string { return slices.Clone(a) }

// Flatten concatenates the tokens of every emitter, in order.
// Nil emitters are skipped.
func Flatten(emitters ...Emitter) []string {
	out := make([]string, 0, 8*len(emitters))

	for _, e := range emitters {
		if e == nil {
			continue
		}

		out = append(out, e.Args()...)
	}

	return out
}

// Bool renders a flag value the way the tools expect it.
func Bool(b bool) string {
	if b {
		return "1"
	}

	return "0"
}

// AbsPath makes path absolute against the current working directory.
// When the working directory cannot be determined the path is returned as given.
func AbsPath(path string) string {
	if path == "" {
		return path
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	return abs
}
