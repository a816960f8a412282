package logx

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/keelworks/storekit/log"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf))

	logger.Info("test message", log.Str("key", "value"))

	output := buf.String()
	if !strings.Contains(output, "level=INFO") {
		t.Errorf("expected level=INFO, got: %s", output)
	}
	if !strings.Contains(output, `msg="test message"`) {
		t.Errorf("expected msg in output, got: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("expected key=value in output, got: %s", output)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf), WithFormat(FormatJSON))

	logger.Warn("slow write", log.Int("bytes", 42))

	output := buf.String()
	if !strings.Contains(output, `"level":"WARN"`) {
		t.Errorf("expected JSON level field, got: %s", output)
	}
	if !strings.Contains(output, `"bytes":42`) {
		t.Errorf("expected bytes field, got: %s", output)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf), WithLevel(slog.LevelWarn))

	logger.Debug("dropped")
	logger.Info("also dropped")
	logger.Warn("kept")

	output := buf.String()
	if strings.Contains(output, "dropped") {
		t.Errorf("expected debug/info to be filtered, got: %s", output)
	}
	if !strings.Contains(output, "kept") {
		t.Errorf("expected warn to pass, got: %s", output)
	}
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf))

	logger.Error(errors.New("disk full"), "put failed", log.Str("key", "k1"))

	output := buf.String()
	if !strings.Contains(output, `error="disk full"`) {
		t.Errorf("expected error field, got: %s", output)
	}
	if !strings.Contains(output, "key=k1") {
		t.Errorf("expected key field, got: %s", output)
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf)).With(log.Str("backend", "file"))

	logger.Info("opened")

	output := buf.String()
	if !strings.Contains(output, "backend=file") {
		t.Errorf("expected attached field, got: %s", output)
	}
}

func TestFlattenPlainPairs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf))

	// Plain alternating key-value arguments must pass through unchanged.
	logger.Info("plain", "a", 1, "b", "two")

	output := buf.String()
	if !strings.Contains(output, "a=1") || !strings.Contains(output, "b=two") {
		t.Errorf("expected plain pairs in output, got: %s", output)
	}
}
