// Package errors defines error types for the mkvtoolnix wrapper.
//
// This package provides structured error types for the failures that can
// happen before or around an external tool invocation: locating a binary,
// spawning it, parsing its version banner or identification document, and
// resolving language codes. All error types support unwrapping and can be
// checked using errors.Is, errors.As, and errors.AsType.
package errors
