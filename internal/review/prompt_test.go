package review

import (
	"strings"
	"testing"
)

func TestBuildUserMessage(t *testing.T) {
	rec := sampleRecord("What is the area of the given shape?")
	msg := buildUserMessage(rec)

	for _, want := range []string{
		"Question: What is the area of the given shape?",
		"Shape: square",
		"Measure: area",
		"Difficulty: easy",
		"A. 21",
		"B. 25",
		"E. 19",
		"Marked answer: B",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestSystemPromptStatesTheImageConstraint(t *testing.T) {
	// The reviewer never sees the rendered figure, so the prompt must not
	// ask it to recompute from measurements.
	if !strings.Contains(systemPrompt, "cannot see") {
		t.Error("system prompt should say the figure image is not visible")
	}
}

func TestVerdictSchemaShape(t *testing.T) {
	def := VerdictSchema.Definition
	props, ok := def["properties"].(map[string]any)
	if !ok {
		t.Fatal("schema has no properties")
	}
	if _, ok := props["verdict"]; !ok {
		t.Error("schema missing verdict property")
	}
	if _, ok := props["reasons"]; !ok {
		t.Error("schema missing reasons property")
	}
	req, ok := def["required"].([]any)
	if !ok || len(req) != 2 {
		t.Errorf("required = %v", def["required"])
	}
}
