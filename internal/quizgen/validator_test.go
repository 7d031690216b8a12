package quizgen

import (
	"strings"
	"testing"

	"github.com/abhisek/geometriq/internal/geometry"
)

// validQuestion builds a square-area question that passes both stock
// validators. Tests mutate the result to trigger specific failures.
func validQuestion() *Question {
	return &Question{
		Text: "What is the area of the given shape?",
		Options: []Option{
			{Label: "A", Value: "21"},
			{Label: "B", Value: "25"},
			{Label: "C", Value: "28"},
			{Label: "D", Value: "30"},
			{Label: "E", Value: "19"},
		},
		CorrectLabel: "B",
		CorrectValue: 25,
		Shape:        geometry.ShapeSquare,
		Tier:         geometry.TierEasy,
		Kind:         geometry.KindArea,
		Dims:         geometry.Dims{Side: 5},
	}
}

func TestStructuralValidator(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(q *Question)
		wantMsg   string
		retryable bool
	}{
		{
			name:    "empty text",
			mutate:  func(q *Question) { q.Text = "" },
			wantMsg: "text is empty",
		},
		{
			name:    "too few options",
			mutate:  func(q *Question) { q.Options = q.Options[:4] },
			wantMsg: "expected 5 options",
		},
		{
			name:    "labels out of order",
			mutate:  func(q *Question) { q.Options[0].Label = "B" },
			wantMsg: `labeled "B"`,
		},
		{
			name: "duplicate values",
			mutate: func(q *Question) {
				q.Options[2].Value = "21"
			},
			wantMsg:   "duplicate option value",
			retryable: true,
		},
		{
			name:    "non-integer value",
			mutate:  func(q *Question) { q.Options[3].Value = "thirty" },
			wantMsg: "not an integer",
		},
		{
			name:      "negative value",
			mutate:    func(q *Question) { q.Options[4].Value = "-2" },
			wantMsg:   "negative",
			retryable: true,
		},
		{
			name:      "zero outside symmetry",
			mutate:    func(q *Question) { q.Options[4].Value = "0" },
			wantMsg:   "must be positive",
			retryable: true,
		},
		{
			name:    "correct label absent",
			mutate:  func(q *Question) { q.CorrectLabel = "Z" },
			wantMsg: "not among the options",
		},
		{
			name: "correct label holds wrong value",
			mutate: func(q *Question) {
				q.CorrectLabel = "A"
			},
			wantMsg: `holds "21"`,
		},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(q)
			err := v.Validate(q)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Message, tt.wantMsg) {
				t.Errorf("message %q does not mention %q", err.Message, tt.wantMsg)
			}
			if err.Retryable != tt.retryable {
				t.Errorf("retryable = %v, want %v", err.Retryable, tt.retryable)
			}
			if err.Validator != "structural" {
				t.Errorf("validator = %q", err.Validator)
			}
		})
	}
}

func TestStructuralValidator_PassesValidQuestion(t *testing.T) {
	if err := (&StructuralValidator{}).Validate(validQuestion()); err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
}

func TestStructuralValidator_ZeroAllowedForSymmetry(t *testing.T) {
	q := &Question{
		Text: "How many lines of symmetry does this shape contain?",
		Options: []Option{
			{Label: "A", Value: "0"},
			{Label: "B", Value: "1"},
			{Label: "C", Value: "2"},
			{Label: "D", Value: "3"},
			{Label: "E", Value: "4"},
		},
		CorrectLabel: "A",
		CorrectValue: 0,
		Shape:        geometry.ShapeScalene,
		Tier:         geometry.TierEasy,
		Kind:         geometry.KindSymmetry,
		Dims:         geometry.Dims{A: 4, B: 5, C: 6},
	}
	if err := (&StructuralValidator{}).Validate(q); err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
}

func TestAnswerCheckValidator(t *testing.T) {
	v := &AnswerCheckValidator{}

	if err := v.Validate(validQuestion()); err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}

	q := validQuestion()
	q.CorrectValue = 26
	err := v.Validate(q)
	if err == nil {
		t.Fatal("expected a mismatch")
	}
	if !strings.Contains(err.Message, "recomputed 25") {
		t.Errorf("message %q does not carry the recomputed value", err.Message)
	}

	q = validQuestion()
	q.Kind = geometry.Kind("volume")
	if err := v.Validate(q); err == nil {
		t.Fatal("expected a recompute failure for an unknown kind")
	}
}
