package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_FileSinkWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "geometriq.log")

	logger, err := New(Options{Level: "info", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("run finished", zap.String("run_id", "r1"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, `"msg":"run finished"`) {
		t.Errorf("log line %q missing the message", line)
	}
	if !strings.Contains(line, `"run_id":"r1"`) {
		t.Errorf("log line %q missing the field", line)
	}
	if !strings.Contains(line, `"level":"INFO"`) {
		t.Errorf("log line %q missing the level", line)
	}
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geometriq.log")

	logger, err := New(Options{Level: "warn", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("quiet")
	logger.Warn("loud")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(data), "quiet") {
		t.Error("info line logged despite warn level")
	}
	if !strings.Contains(string(data), "loud") {
		t.Error("warn line missing")
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New(Options{Level: "loudest"}); err == nil {
		t.Fatal("New accepted an unknown level")
	}
}

func TestNew_NoSinksIsNoop(t *testing.T) {
	logger, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger == nil {
		t.Fatal("New returned a nil logger")
	}
	logger.Info("dropped")
}
