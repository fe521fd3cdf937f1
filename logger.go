package mkvtoolnix

import "log/slog"

// NopLogger returns a logger whose handler drops every record. It is the
// logger a Toolnix uses when WithLogger is not given.
func NopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
