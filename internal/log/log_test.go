package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	if New(Config{}) == nil {
		t.Fatal("New() returned nil")
	}
}

func TestNewWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&buf, Config{Level: slog.LevelDebug})
	logger.Info("hello", "chat_id", 42)

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Errorf("expected output to contain message, got: %s", out)
	}
	if !strings.Contains(out, "chat_id=42") {
		t.Errorf("expected output to contain chat_id=42, got: %s", out)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&buf, Config{JSON: true})
	logger.Info("json record", "foo", "bar")

	out := buf.String()
	if !strings.Contains(out, `"msg":"json record"`) {
		t.Errorf("expected JSON output with msg field, got: %s", out)
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	if logger == nil {
		t.Fatal("NewNop() returned nil")
	}

	// Must not panic.
	logger.Info("discarded")
	logger.Error("also discarded")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&buf, Config{Level: slog.LevelInfo})

	logger.Debug("hidden")
	logger.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug record should be filtered out at info level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("info record should appear")
	}
}
