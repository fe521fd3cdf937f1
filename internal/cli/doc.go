// Package cli locates the mkvtoolnix binaries and parses their version banners.
//
// A binary is resolved either inside an operator-configured directory, and
// only there, or through the PATH search followed by a few well-known
// installation directories.
package cli
