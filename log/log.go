// Package log defines the minimal structured logging interface consumed by
// the storage backends.
//
// Overview:
//   - Responsibility: Define a stable logging interface, decoupled from any implementation
//   - Key Types: Logger interface with structured key-value logging
//   - Concurrency Model: Logger implementations must be safe for concurrent use
//   - Error Semantics: Error method accepts the error as first parameter
//
// Usage:
//
//	logger.Debug("stored object", log.Str("type", "User"), log.Str("key", "u-1"))
package log

import "time"

// Logger is a structured logging interface compatible with slog concepts.
// Implementations must be safe for concurrent use.
type Logger interface {
	// With returns a new Logger with the given key-value pairs attached.
	With(kv ...any) Logger

	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, kv ...any)

	// Info logs an informational message with optional key-value pairs.
	Info(msg string, kv ...any)

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, kv ...any)

	// Error logs an error message with the error and optional key-value pairs.
	Error(err error, msg string, kv ...any)
}

// Str creates a string key-value pair for structured logging.
func Str(k, v string) any {
	return []any{k, v}
}

// Int creates an integer key-value pair for structured logging.
func Int(k string, v int) any {
	return []any{k, v}
}

// Dur creates a duration key-value pair for structured logging.
func Dur(k string, v time.Duration) any {
	return []any{k, v}
}

// Nop returns a Logger that discards everything. Backends fall back to it
// when no logger is configured.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) With(kv ...any) Logger                  { return nopLogger{} }
func (nopLogger) Debug(msg string, kv ...any)            {}
func (nopLogger) Info(msg string, kv ...any)             {}
func (nopLogger) Warn(msg string, kv ...any)             {}
func (nopLogger) Error(err error, msg string, kv ...any) {}
