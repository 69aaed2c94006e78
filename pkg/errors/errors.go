// Package errors provides structured error types for tagtile.
//
// Every failure the pipeline can raise carries a machine-readable [Code] so
// that callers can react to a category of failure without matching strings:
//
//   - INVALID_ARGUMENT: bad page count, DPI, minimum size or paper name
//   - NO_TRANSPARENT_REGION: the alpha scan found no hole to recurse into
//   - UNSUPPORTED_FORMAT: the requested output kind is neither pdf nor png
//   - IO_ERROR: unreadable input, unwritable output
//   - INVALID_CONFIG: unreadable or malformed configuration file
//   - INTERNAL_ERROR: an invariant of the pipeline itself was broken
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidArgument, "page count must be at least 1, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidArgument) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	ErrCodeInvalidArgument     Code = "INVALID_ARGUMENT"
	ErrCodeNoTransparentRegion Code = "NO_TRANSPARENT_REGION"
	ErrCodeUnsupportedFormat   Code = "UNSUPPORTED_FORMAT"
	ErrCodeIO                  Code = "IO_ERROR"
	ErrCodeInvalidConfig       Code = "INVALID_CONFIG"
	ErrCodeInternal            Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
