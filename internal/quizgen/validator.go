package quizgen

import (
	"fmt"
	"strconv"

	"github.com/abhisek/geometriq/internal/geometry"
)

// Validator checks a generated question before it leaves the engine.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, used in error
	// messages and logs, e.g. "structural", "answer-check".
	Name() string

	// Validate checks the question and returns nil if it passes.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks the option-set invariants: exactly five options
// labeled A through E in order, pairwise-distinct integer values, no
// negatives, strictly positive values outside the symmetry kind, and a
// correct label that resolves to the typed correct value.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question text is empty",
			Retryable: false,
		}
	}
	if len(q.Options) != 5 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected 5 options, got %d", len(q.Options)),
			Retryable: false,
		}
	}

	seen := make(map[string]bool, 5)
	for i, opt := range q.Options {
		if opt.Label != Labels[i] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %d labeled %q, want %q", i, opt.Label, Labels[i]),
				Retryable: false,
			}
		}
		if seen[opt.Value] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate option value %q", opt.Value),
				Retryable: true,
			}
		}
		seen[opt.Value] = true

		n, err := strconv.Atoi(opt.Value)
		if err != nil {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %s value %q is not an integer", opt.Label, opt.Value),
				Retryable: false,
			}
		}
		if n < 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %s value %d is negative", opt.Label, n),
				Retryable: true,
			}
		}
		if n == 0 && q.Kind != geometry.KindSymmetry {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %s must be positive for %s questions", opt.Label, q.Kind),
				Retryable: true,
			}
		}
	}

	value, ok := q.OptionValue(q.CorrectLabel)
	if !ok {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correct label %q not among the options", q.CorrectLabel),
			Retryable: false,
		}
	}
	if value != strconv.Itoa(q.CorrectValue) {
		return &ValidationError{
			Validator: v.Name(),
			Message: fmt.Sprintf("correct label %q holds %q, want %d",
				q.CorrectLabel, value, q.CorrectValue),
			Retryable: false,
		}
	}
	return nil
}

// AnswerCheckValidator independently recomputes the answer from the shape,
// dimensions and kind and compares it with the typed correct value carried
// on the question.
type AnswerCheckValidator struct{}

func (v *AnswerCheckValidator) Name() string { return "answer-check" }

func (v *AnswerCheckValidator) Validate(q *Question) *ValidationError {
	computed, err := ComputeAnswer(q.Shape, q.Dims, q.Kind)
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("recompute failed: %v", err),
			Retryable: false,
		}
	}
	if computed != q.CorrectValue {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("recomputed %d but question claims %d", computed, q.CorrectValue),
			Retryable: false,
		}
	}
	return nil
}
