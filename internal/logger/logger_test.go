package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interview.log")

	log, err := New(Options{JSON: true, Debug: true, File: path})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	log.Debug("question posted", zap.Int("number", 1))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("expected a single json entry, got %q: %v", data, err)
	}
	if entry["step"] != "question posted" || entry["level"] != "debug" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNewDefaultLevel(t *testing.T) {
	log, err := New(Options{})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug must be disabled by default")
	}
	if !log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info must be enabled by default")
	}
}
