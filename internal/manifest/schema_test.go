package manifest

import (
	"strings"
	"testing"

	"github.com/abhisek/geometriq/internal/geometry"
)

func TestValidate_AcceptsWellFormedRecords(t *testing.T) {
	if err := Validate([]Record{sampleRecord()}); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := Validate(nil); err != nil {
		t.Fatalf("Validate(empty): %v", err)
	}
}

func TestValidate_SchemaViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Record)
	}{
		{"empty question", func(r *Record) { r.Question = "" }},
		{"missing option", func(r *Record) { delete(r.Options, "E") }},
		{"extra option", func(r *Record) { r.Options["F"] = "99" }},
		{"bad answer label", func(r *Record) { r.Answer = "F" }},
		{"unknown difficulty", func(r *Record) { r.Difficulty = "brutal" }},
		{"empty image", func(r *Record) { r.Image = "" }},
		{"unknown shape", func(r *Record) { r.Shape = "rhombus" }},
		{"unknown kind", func(r *Record) { r.Kind = "volume" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sampleRecord()
			tt.mutate(&r)
			if err := Validate([]Record{r}); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestValidate_SemanticViolations(t *testing.T) {
	r := sampleRecord()
	r.Options["C"] = r.Options["B"]
	err := Validate([]Record{r})
	if err == nil || !strings.Contains(err.Error(), "duplicate option value") {
		t.Errorf("duplicate values: got %v", err)
	}

	r = sampleRecord()
	r.Shape = geometry.ShapeCircle
	r.Kind = geometry.KindSymmetry
	err = Validate([]Record{r})
	if err == nil || !strings.Contains(err.Error(), "does not support") {
		t.Errorf("circle symmetry: got %v", err)
	}
}

func TestValidate_OptionValueRules(t *testing.T) {
	r := sampleRecord()
	r.Options["C"] = "many"
	if err := Validate([]Record{r}); err == nil || !strings.Contains(err.Error(), "not an integer") {
		t.Errorf("non-integer option: got %v", err)
	}

	r = sampleRecord()
	r.Options["C"] = "0"
	if err := Validate([]Record{r}); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Errorf("zero outside symmetry: got %v", err)
	}

	symmetry := Record{
		Question: "How many lines of symmetry does this shape contain?",
		Options: map[string]string{
			"A": "0", "B": "1", "C": "2", "D": "3", "E": "4",
		},
		Answer:     "A",
		Difficulty: geometry.TierEasy,
		Image:      "images/easy/Q1.png",
		Shape:      geometry.ShapeScalene,
		Kind:       geometry.KindSymmetry,
	}
	if err := Validate([]Record{symmetry}); err != nil {
		t.Errorf("zero is a legal symmetry count: %v", err)
	}
}

func TestValidate_DuplicateImagePaths(t *testing.T) {
	first := sampleRecord()
	second := sampleRecord()
	second.Options = map[string]string{
		"A": "31", "B": "35", "C": "38", "D": "40", "E": "29",
	}
	second.Answer = "B"
	err := Validate([]Record{first, second})
	if err == nil || !strings.Contains(err.Error(), "already used") {
		t.Errorf("duplicate image: got %v", err)
	}
}

func TestValidate_ReportsRecordIndex(t *testing.T) {
	good := sampleRecord()
	bad := sampleRecord()
	bad.Options["D"] = bad.Options["A"]
	err := Validate([]Record{good, bad})
	if err == nil || !strings.Contains(err.Error(), "record 1") {
		t.Errorf("expected the failing index in %v", err)
	}
}
