package mkvtoolnix

import (
	"iter"
)

func filterKind(lines iter.Seq[Line], kind LineKind) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for l := range lines {
			if l.Kind != kind {
				continue
			}

			if !yield(l) {
				return
			}
		}
	}
}

// Warnings yields only the WARNING lines of lines.
func Warnings(lines iter.Seq[Line]) iter.Seq[Line] {
	return filterKind(lines, LineWarning)
}

// Errors yields only the ERROR lines of lines.
func Errors(lines iter.Seq[Line]) iter.Seq[Line] {
	return filterKind(lines, LineError)
}

// Progress yields the percentage of every PROGRESS line of lines.
func Progress(lines iter.Seq[Line]) iter.Seq[int] {
	return func(yield func(int) bool) {
		for l := range filterKind(lines, LineProgress) {
			pct, ok := l.Percent()
			if !ok {
				continue
			}

			if !yield(pct) {
				return
			}
		}
	}
}
