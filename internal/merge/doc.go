// Package merge builds mkvmerge command lines.
//
// Every input file carries one track-copy selection per media kind. A fresh
// selection excludes nothing, so every track is copied until the caller
// restricts it.
package merge
