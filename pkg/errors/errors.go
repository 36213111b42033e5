// Package errors provides structured error types for graphgen.
//
// This package defines error codes and types that enable:
//   - Consistent error handling between the generator core and the CLI
//   - Machine-readable error codes that map onto process exit codes
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes fall into three groups:
//   - INVALID_*: usage errors detected before generation starts
//   - UNSATISFIABLE, INFEASIBLE: requests the generator refuses to run
//   - CANCELED, INTERNAL: interrupted runs and unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "vertex count must be positive, got %d", v)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Generation errors
	ErrCodeUnsatisfiable Code = "UNSATISFIABLE"
	ErrCodeInfeasible    Code = "INFEASIBLE"

	// Run errors
	ErrCodeCanceled Code = "CANCELED"
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// Exit codes used by the command-line front end.
const (
	ExitOK         = 0
	ExitUsage      = 1
	ExitGeneration = 2
	ExitCanceled   = 130
)

// ExitCode maps an error onto the process exit status.
// A nil error is success; usage errors exit 1, requests the generator
// refuses exit 2, and an interrupted run exits 130 like a shell would.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch GetCode(err) {
	case ErrCodeUnsatisfiable, ErrCodeInfeasible:
		return ExitGeneration
	case ErrCodeCanceled:
		return ExitCanceled
	default:
		return ExitUsage
	}
}
