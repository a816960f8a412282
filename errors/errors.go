// Package errors provides structured error handling for storage operations.
//
// Overview:
//   - Responsibility: Define error codes and structured error wrapping
//   - Key Types: Code type for failure classification, E struct for structured errors
//   - Concurrency Model: All functions are safe for concurrent use
//   - Error Semantics: Compatible with standard library error wrapping
//   - Performance Notes: Minimal allocations, one struct per failure
//
// Usage:
//
//	err := errors.Newf(errors.CodeConfig, "store address %q has no path", raw)
//	wrapped := errors.Wrapf(errors.CodeIO, "filestore.put", ioErr, "key %q", key)
//	if errors.IsCode(err, errors.CodeSerialization) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Code classifies a storage failure.
type Code string

// Failure codes. Absence of a key or partition is never an error and has no
// code; it is reported as a false/zero result by the operation itself.
const (
	// CodeIO covers permission, disk, and network failures while touching
	// the underlying store.
	CodeIO Code = "IO"
	// CodeSerialization covers malformed payloads and payloads that do not
	// match the target object shape.
	CodeSerialization Code = "SERIALIZATION"
	// CodeConfig covers empty or unparseable store addresses, reported
	// synchronously at construction before any I/O.
	CodeConfig Code = "CONFIG"
	// CodeSchemaMismatch is reported when an object's schema variant does
	// not match the backend it is used with.
	CodeSchemaMismatch Code = "SCHEMA_MISMATCH"
	// CodeInvalidArgument covers rejected keys and type names.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeUnimplemented marks declared operations a backend does not
	// realize yet.
	CodeUnimplemented Code = "UNIMPLEMENTED"
)

// E is a structured error carrying a code, the failing operation, and an
// optional underlying cause.
type E struct {
	Code Code   // Failure classification code
	Op   string // Operation that failed, e.g. "filestore.get"
	Err  error  // Underlying error (may be nil)
	Msg  string // Human-readable message with key/type context
}

// Error implements the error interface.
func (e *E) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %s: %v", e.Code, e.Op, e.Msg, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
}

// Unwrap returns the underlying error for error unwrapping.
func (e *E) Unwrap() error {
	return e.Err
}

// New creates a new structured error with the given code and message.
func New(code Code, msg string) error {
	return &E{
		Code: code,
		Msg:  msg,
	}
}

// Newf creates a new structured error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &E{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new structured error wrapping an existing error.
// The operation name identifies where the failure occurred.
func Wrap(code Code, op string, err error) error {
	return &E{
		Code: code,
		Op:   op,
		Err:  err,
	}
}

// Wrapf creates a new structured error wrapping an existing error with a
// formatted message. The message should carry the key and type context the
// caller would otherwise have to re-derive.
func Wrapf(code Code, op string, err error, format string, args ...any) error {
	return &E{
		Code: code,
		Op:   op,
		Err:  err,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// CodeOf extracts the error code from an error.
// Returns empty string if the error doesn't carry a code.
func CodeOf(err error) Code {
	var e *E
	if err != nil && errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode checks if an error carries a specific code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// Is reports whether any error in err's tree matches target.
// This is a convenience passthrough to the standard library.
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience passthrough to the standard library.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join wraps a list of errors into a single error, discarding nils.
// This is a convenience passthrough to the standard library.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
