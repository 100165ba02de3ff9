package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestResolveFormat(t *testing.T) {
	tty := func() bool { return true }
	pipe := func() bool { return false }

	tests := []struct {
		format string
		isTTY  func() bool
		want   string
	}{
		{"auto", tty, "console"},
		{"auto", pipe, "json"},
		{"", pipe, "json"},
		{"console", pipe, "console"},
		{"json", tty, "json"},
		{"xml", tty, ""},
	}
	for _, tt := range tests {
		if got := resolveFormat(tt.format, tt.isTTY); got != tt.want {
			t.Fatalf("resolveFormat(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, err := New(Config{Level: "loud", Format: "json"}); err == nil {
		t.Fatal("expected invalid level to fail")
	}
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shell.log")
	logger, err := New(Config{Level: "info", Format: "json", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("frame", zap.Uint64("count", 7))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry["message"] != "frame" || entry["level"] != "info" || entry["count"] != float64(7) {
		t.Fatalf("unexpected entry: %v", entry)
	}
}
