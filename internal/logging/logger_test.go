package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWriter(&buf, Config{Level: "info", Format: "json"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	log.Debug("hidden")
	log.Info("content fetched", zap.String("theme", "Animals"))
	_ = log.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry["msg"] != "content fetched" || entry["theme"] != "Animals" || entry["level"] != "info" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	if _, _, err := New(Config{Level: "verbose"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "svenska.log")
	log, closeFn, err := New(Config{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	log.Warn("stored state unreadable")
	_ = log.Sync()
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "WARN") || !strings.Contains(string(data), "stored state unreadable") {
		t.Errorf("log file = %q", data)
	}
}

func TestDefaultFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	got, err := DefaultFile()
	if err != nil {
		t.Fatalf("default file: %v", err)
	}
	if got != filepath.Join("/tmp/state", "svenska", "svenska.log") {
		t.Errorf("got %q", got)
	}
}
