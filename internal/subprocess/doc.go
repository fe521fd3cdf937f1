// Package subprocess runs the toolkit binaries and classifies their output.
//
// A Runner spawns one process per command with stderr merged into stdout.
// The combined stream is read lazily by whichever consumer of the Result
// asks for the next line first, and every classified line is cached so that
// other consumers replay it instead of reading the stream again.
package subprocess
