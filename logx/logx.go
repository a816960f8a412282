// Package logx provides a structured logging implementation based on slog.
//
// Overview:
//   - Responsibility: Implement log.Logger on top of slog with text/JSON output
//   - Key Types: Options and functional options, New constructor
//   - Concurrency Model: Returned loggers are safe for concurrent use
//   - Error Semantics: No errors returned; logging failures are silently dropped
//
// Usage:
//
//	logger := logx.New(logx.WithFormat(logx.FormatJSON), logx.WithLevel(slog.LevelDebug))
//	logger.Info("store opened", log.Str("root", "/var/data"))
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/keelworks/storekit/log"
)

// Format specifies the output format for logs.
type Format string

const (
	// FormatText outputs logs as key=value text lines.
	FormatText Format = "text"
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
)

// Options configures the logger behavior.
type Options struct {
	Format Format     // Output format: text or json
	Level  slog.Level // Minimum log level
	Writer io.Writer  // Output writer (default: os.Stderr)
}

// Option configures logger behavior.
type Option func(*Options)

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *Options) {
		o.Level = level
	}
}

// WithWriter sets the output writer.
func WithWriter(w io.Writer) Option {
	return func(o *Options) {
		o.Writer = w
	}
}

// New creates a new Logger with the given options.
func New(opts ...Option) log.Logger {
	options := Options{
		Format: FormatText,
		Level:  slog.LevelInfo,
		Writer: os.Stderr,
	}

	for _, opt := range opts {
		opt(&options)
	}

	if options.Writer == nil {
		options.Writer = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: options.Level}

	var handler slog.Handler
	if options.Format == FormatJSON {
		handler = slog.NewJSONHandler(options.Writer, handlerOpts)
	} else {
		handler = slog.NewTextHandler(options.Writer, handlerOpts)
	}

	return &logger{s: slog.New(handler)}
}

// logger implements log.Logger using slog.
type logger struct {
	s *slog.Logger
}

// With returns a new Logger with the given key-value pairs attached.
func (l *logger) With(kv ...any) log.Logger {
	return &logger{s: l.s.With(flatten(kv)...)}
}

// Debug logs a debug message.
func (l *logger) Debug(msg string, kv ...any) {
	l.s.Debug(msg, flatten(kv)...)
}

// Info logs an informational message.
func (l *logger) Info(msg string, kv ...any) {
	l.s.Info(msg, flatten(kv)...)
}

// Warn logs a warning message.
func (l *logger) Warn(msg string, kv ...any) {
	l.s.Warn(msg, flatten(kv)...)
}

// Error logs an error message with the error attached as a field.
func (l *logger) Error(err error, msg string, kv ...any) {
	args := flatten(kv)
	if err != nil {
		args = append([]any{"error", err}, args...)
	}
	l.s.Error(msg, args...)
}

// flatten expands pair helpers produced by log.Str and friends, which wrap
// each pair in a []any, into the flat key-value list slog expects.
func flatten(kv []any) []any {
	out := make([]any, 0, len(kv)*2)
	for _, item := range kv {
		if pair, ok := item.([]any); ok {
			out = append(out, pair...)
			continue
		}
		out = append(out, item)
	}
	return out
}
