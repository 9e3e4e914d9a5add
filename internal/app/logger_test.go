package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "info", "json")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown", "generation", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record, got %d: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if rec["msg"] != "shown" || rec["generation"] != float64(3) {
		t.Fatalf("unexpected record %v", rec)
	}
}

func TestNewLoggerText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "debug", "text")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Debug("visible")
	if !strings.Contains(buf.String(), "msg=visible") {
		t.Fatalf("debug record missing: %q", buf.String())
	}
}

func TestNewLoggerRejects(t *testing.T) {
	if _, err := NewLogger(&bytes.Buffer{}, "loud", "text"); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("bad level: got %v", err)
	}
	if _, err := NewLogger(&bytes.Buffer{}, "info", "yaml"); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("bad format: got %v", err)
	}
}
