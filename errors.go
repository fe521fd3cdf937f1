package mkvtoolnix

import (
	"github.com/wagiedev/mkvtoolnix-go/internal/errors"
	"github.com/wagiedev/mkvtoolnix-go/internal/subprocess"
)

// Re-export error types from internal packages

// MkvToolnixError is the base interface for all errors of this package.
type MkvToolnixError = errors.MkvToolnixError

// BinaryNotFoundError indicates an mkvtoolnix binary could not be located.
type BinaryNotFoundError = errors.BinaryNotFoundError

// StartError indicates a process could not be spawned.
type StartError = errors.StartError

// VersionParseError indicates a --version banner was not understood.
type VersionParseError = errors.VersionParseError

// JSONDecodeError indicates the identification output was not valid JSON.
type JSONDecodeError = errors.JSONDecodeError

// ScalarParseError indicates a UID, duration or dimension could not be parsed.
type ScalarParseError = errors.ScalarParseError

// UnknownLanguageError indicates a language code missing from the language table.
type UnknownLanguageError = errors.UnknownLanguageError

// CommandError indicates a run that exited nonzero or printed an ERROR line.
// The complete classified output is available through its Result.
type CommandError = subprocess.CommandError

// MergeError is the CommandError of an mkvmerge run.
type MergeError = subprocess.MergeError

// PropEditError is the CommandError of an mkvpropedit run.
type PropEditError = subprocess.PropEditError

// ExtractError is the CommandError of an mkvextract run.
type ExtractError = subprocess.ExtractError

// Re-export sentinel errors from internal package.
var (
	// ErrUnknownLanguage indicates a language code is absent from the language table.
	ErrUnknownLanguage = errors.ErrUnknownLanguage

	// ErrNoFileIdentification indicates a track without a source file.
	ErrNoFileIdentification = errors.ErrNoFileIdentification

	// ErrResultClosed indicates a result was closed before its output ended.
	ErrResultClosed = errors.ErrResultClosed
)
