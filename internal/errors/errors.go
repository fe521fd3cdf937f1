package errors

import (
	"errors"
	"fmt"
	"strings"
)

// MkvToolnixError is the base interface for all errors raised by this module.
type MkvToolnixError interface {
	error
	IsMkvToolnixError() bool
}

// Compile-time verification that all error types implement MkvToolnixError.
var (
	_ MkvToolnixError = (*BinaryNotFoundError)(nil)
	_ MkvToolnixError = (*StartError)(nil)
	_ MkvToolnixError = (*VersionParseError)(nil)
	_ MkvToolnixError = (*JSONDecodeError)(nil)
	_ MkvToolnixError = (*ScalarParseError)(nil)
	_ MkvToolnixError = (*UnknownLanguageError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrUnknownLanguage indicates a language code is absent from the language table.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrNoFileIdentification indicates a track or attachment was not produced
	// by an identification call and has no source file.
	ErrNoFileIdentification = errors.New("track has no file identification")

	// ErrResultClosed indicates the output stream of a result was closed
	// before it was fully read.
	ErrResultClosed = errors.New("result output closed")
)

// BinaryNotFoundError indicates an mkvtoolnix binary could not be located.
type BinaryNotFoundError struct {
	Binary        string
	SearchedPaths []string
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("%s not found in: %s", e.Binary, strings.Join(e.SearchedPaths, ", "))
}

// IsMkvToolnixError implements MkvToolnixError.
func (e *BinaryNotFoundError) IsMkvToolnixError() bool { return true }

// StartError indicates the process could not be spawned.
type StartError struct {
	Binary string
	Err    error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Binary, e.Err)
}

func (e *StartError) Unwrap() error {
	return e.Err
}

// IsMkvToolnixError implements MkvToolnixError.
func (e *StartError) IsMkvToolnixError() bool { return true }

// VersionParseError indicates a version banner did not match the expected pattern.
type VersionParseError struct {
	Binary string
	Output string
}

func (e *VersionParseError) Error() string {
	return fmt.Sprintf("unrecognised %s version output: %q", e.Binary, e.Output)
}

// IsMkvToolnixError implements MkvToolnixError.
func (e *VersionParseError) IsMkvToolnixError() bool { return true }

// JSONDecodeError indicates the identification document could not be decoded.
// The raw document is preserved for inspection.
type JSONDecodeError struct {
	RawData string
	Err     error
}

func (e *JSONDecodeError) Error() string {
	return fmt.Sprintf("failed to decode identification JSON: %v", e.Err)
}

func (e *JSONDecodeError) Unwrap() error {
	return e.Err
}

// IsMkvToolnixError implements MkvToolnixError.
func (e *JSONDecodeError) IsMkvToolnixError() bool { return true }

// ScalarParseError indicates a single field of the identification document
// held a value of the wrong shape (uid, duration, dimension).
type ScalarParseError struct {
	Kind  string
	Value string
	Err   error
}

func (e *ScalarParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Kind, e.Value, e.Err)
	}

	return fmt.Sprintf("invalid %s %q", e.Kind, e.Value)
}

func (e *ScalarParseError) Unwrap() error {
	return e.Err
}

// IsMkvToolnixError implements MkvToolnixError.
func (e *ScalarParseError) IsMkvToolnixError() bool { return true }

// UnknownLanguageError indicates a language code could not be resolved.
type UnknownLanguageError struct {
	Code string
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown language code %q", e.Code)
}

func (e *UnknownLanguageError) Unwrap() error {
	return ErrUnknownLanguage
}

// IsMkvToolnixError implements MkvToolnixError.
func (e *UnknownLanguageError) IsMkvToolnixError() bool { return true }
