package quizgen

import (
	"github.com/abhisek/geometriq/internal/figure"
	"github.com/abhisek/geometriq/internal/geometry"
)

// Labels are the option labels in assignment order.
var Labels = [5]string{"A", "B", "C", "D", "E"}

// Option pairs an option label with its value. Values are integers rendered
// as plain strings, e.g. "42".
type Option struct {
	Label string
	Value string
}

// Question is one generated multiple-choice question, immutable once
// returned by the engine.
type Question struct {
	// Text is the question prompt, e.g. "What is the area of the given shape?"
	Text string

	// Options holds exactly 5 entries labeled A through E in order.
	// Values are pairwise distinct; exactly one equals CorrectValue.
	Options []Option

	// CorrectLabel is the label of the correct option.
	CorrectLabel string

	// CorrectValue is the computed correct answer. It is carried as a typed
	// integer through option assembly and never re-derived from the
	// formatted option strings.
	CorrectValue int

	// Shape, Tier and Kind record what the question was generated for.
	Shape geometry.Shape
	Tier  geometry.Tier
	Kind  geometry.Kind

	// Dims holds the sampled figure dimensions.
	Dims geometry.Dims

	// Figure carries the drawing instructions for an external renderer.
	Figure *figure.Figure
}

// OptionValue returns the value string for a label and false when the label
// is not assigned.
func (q *Question) OptionValue(label string) (string, bool) {
	for _, opt := range q.Options {
		if opt.Label == label {
			return opt.Value, true
		}
	}
	return "", false
}

// GenerateInput selects what to generate. All three fields are required;
// random mixing is the caller's concern.
type GenerateInput struct {
	Shape geometry.Shape
	Tier  geometry.Tier
	Kind  geometry.Kind
}
