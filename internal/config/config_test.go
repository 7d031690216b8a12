package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Output.Dir != "questions" {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "questions")
	}
	if cfg.Render.ImageSize != 375 {
		t.Errorf("Render.ImageSize = %d, want 375", cfg.Render.ImageSize)
	}
	if cfg.Worksheet.PerShape != 4 || cfg.Worksheet.Total != 50 {
		t.Errorf("Worksheet caps = %d/%d, want 4/50", cfg.Worksheet.PerShape, cfg.Worksheet.Total)
	}
	if cfg.Review.RequestsPerSecond != 2.0 || cfg.Review.Concurrency != 4 {
		t.Errorf("Review = %+v, want rps 2 and concurrency 4", cfg.Review)
	}
	if cfg.Logging.Level != "info" || !cfg.Logging.Console {
		t.Errorf("Logging = %+v, want info level with console on", cfg.Logging)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := `
output:
  dir: out/sets
render:
  image_size: 512
worksheet:
  per_shape: 2
  total: 20
  title: Mock Exam
logging:
  level: debug
  file: logs/geometriq.log
`
	if err := os.WriteFile(filepath.Join(dir, "geometriq.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Output.Dir != "out/sets" {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "out/sets")
	}
	if cfg.Render.ImageSize != 512 {
		t.Errorf("Render.ImageSize = %d, want 512", cfg.Render.ImageSize)
	}
	if cfg.Worksheet.Title != "Mock Exam" {
		t.Errorf("Worksheet.Title = %q, want %q", cfg.Worksheet.Title, "Mock Exam")
	}
	if cfg.Worksheet.PerShape != 2 || cfg.Worksheet.Total != 20 {
		t.Errorf("Worksheet caps = %d/%d, want 2/20", cfg.Worksheet.PerShape, cfg.Worksheet.Total)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "logs/geometriq.log" {
		t.Errorf("Logging = %+v, want debug level and a file sink", cfg.Logging)
	}
	// Keys the file leaves out keep their defaults.
	if cfg.Review.Concurrency != 4 {
		t.Errorf("Review.Concurrency = %d, want default 4", cfg.Review.Concurrency)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "worksheet:\n  total: 20\n"
	if err := os.WriteFile(filepath.Join(dir, "geometriq.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GEOMETRIQ_WORKSHEET_TOTAL", "12")
	t.Setenv("GEOMETRIQ_LLM_PROVIDER", "openai")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Worksheet.Total != 12 {
		t.Errorf("Worksheet.Total = %d, want env override 12", cfg.Worksheet.Total)
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("LLM.Provider = %q, want env override %q", cfg.LLM.Provider, "openai")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "geometriq.yaml"), []byte("worksheet: ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatal("Load accepted a malformed config file")
	}
}
