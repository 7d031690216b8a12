package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"verdict": map[string]any{"type": "string", "enum": []any{"approve", "reject"}},
			"reason":  map[string]any{"type": "string"},
			"score":   map[string]any{"type": "integer"},
			"flaws": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"verdict", "reason"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["reason"].Type != "STRING" {
		t.Fatalf("expected STRING for reason, got %s", schema.Properties["reason"].Type)
	}
	if schema.Properties["score"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for score, got %s", schema.Properties["score"].Type)
	}
	if len(schema.Properties["verdict"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(schema.Properties["verdict"].Enum))
	}
	if schema.Properties["flaws"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for flaws, got %s", schema.Properties["flaws"].Type)
	}
	if schema.Properties["flaws"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for flaws items, got %s", schema.Properties["flaws"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
