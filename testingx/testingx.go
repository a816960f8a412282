// Package testingx provides testing helpers for the storage packages.
//
// Usage:
//
//	logger := testingx.NewMockLogger(t)
//	store, _ := filestore.New(root, format.JSON{}, filestore.WithLogger(logger))
//	logger.AssertLogged("DEBUG", "object stored")
package testingx

import (
	"sync"
	"testing"

	"github.com/keelworks/storekit/log"
)

// MockLogger is a log.Logger that records entries for assertions.
type MockLogger struct {
	t       *testing.T
	mu      sync.Mutex
	entries []LogEntry
}

// LogEntry represents a single recorded log entry.
type LogEntry struct {
	Level   string
	Message string
	Fields  []any
	Error   error
}

// NewMockLogger creates a new mock logger bound to the test.
func NewMockLogger(t *testing.T) *MockLogger {
	return &MockLogger{
		t:       t,
		entries: make([]LogEntry, 0),
	}
}

// With returns the logger itself; attached fields are not tracked.
func (m *MockLogger) With(kv ...any) log.Logger {
	return m
}

// Debug records a debug entry.
func (m *MockLogger) Debug(msg string, kv ...any) {
	m.log("DEBUG", msg, nil, kv)
}

// Info records an info entry.
func (m *MockLogger) Info(msg string, kv ...any) {
	m.log("INFO", msg, nil, kv)
}

// Warn records a warning entry.
func (m *MockLogger) Warn(msg string, kv ...any) {
	m.log("WARN", msg, nil, kv)
}

// Error records an error entry.
func (m *MockLogger) Error(err error, msg string, kv ...any) {
	m.log("ERROR", msg, err, kv)
}

func (m *MockLogger) log(level, msg string, err error, kv []any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  kv,
		Error:   err,
	})
}

// Entries returns a copy of all recorded entries.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := make([]LogEntry, len(m.entries))
	copy(entries, m.entries)
	return entries
}

// AssertLogged fails the test unless an entry with the given level and
// message was recorded.
func (m *MockLogger) AssertLogged(level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, entry := range m.entries {
		if entry.Level == level && entry.Message == msg {
			return
		}
	}
	m.t.Errorf("expected log entry not found: level=%s msg=%q", level, msg)
}

// Clear discards all recorded entries.
func (m *MockLogger) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
}
