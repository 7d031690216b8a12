package quizgen

import (
	"math/rand"

	"github.com/abhisek/geometriq/internal/figure"
	"github.com/abhisek/geometriq/internal/geometry"
)

// Generator produces geometry questions from an explicit random source.
type Generator interface {
	// Generate builds one validated question. The rng is owned by the
	// caller; a generation call consumes no other shared state, so
	// callers get reproducible runs by seeding their own sources.
	Generate(rng *rand.Rand, input GenerateInput) (*Question, error)
}

// Engine is the closed-form implementation of Generator.
type Engine struct {
	cfg Config
}

// New creates an Engine with the given config.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Generate samples dimensions, computes the correct answer, synthesizes
// distractors and assembles the option set, then runs the validator chain.
func (e *Engine) Generate(rng *rand.Rand, in GenerateInput) (*Question, error) {
	if _, err := geometry.ParseShape(string(in.Shape)); err != nil {
		return nil, &ConfigurationError{Field: "shape", Value: string(in.Shape)}
	}
	if _, _, ok := geometry.Range(in.Tier); !ok {
		return nil, &ConfigurationError{Field: "tier", Value: string(in.Tier)}
	}
	if !kindAllowed(in.Shape, in.Kind) {
		hint := ""
		if in.Shape == geometry.ShapeCircle && in.Kind == geometry.KindSymmetry {
			hint = "symmetry is undefined for the circle"
		}
		return nil, &ConfigurationError{Field: "kind", Value: string(in.Kind), Hint: hint}
	}

	// The smallest shapes can round a computed answer down to zero,
	// which no non-symmetry question may carry. Resample until positive.
	var dims geometry.Dims
	var correct int
	for attempt := 0; ; attempt++ {
		if attempt >= e.cfg.MaxDimensionAttempts {
			return nil, &GenerationError{Stage: "answer", Attempts: attempt}
		}
		var err error
		dims, err = SampleDimensions(in.Shape, in.Tier, rng, e.cfg.MaxDimensionAttempts)
		if err != nil {
			return nil, err
		}
		correct, err = ComputeAnswer(in.Shape, dims, in.Kind)
		if err != nil {
			return nil, err
		}
		if correct >= 1 || in.Kind == geometry.KindSymmetry {
			break
		}
	}

	var text string
	var distractors []int
	var err error
	switch in.Kind {
	case geometry.KindSymmetry:
		text = symmetryText
		distractors, err = SelectSymmetryDistractors(
			correct, geometry.SymmetryPool(in.Shape), rng, e.cfg.MaxDistractorAttempts)
	case geometry.KindMissing:
		spec, ok := geometry.MissingFor(in.Shape)
		if !ok {
			return nil, &ConfigurationError{Field: "shape", Value: string(in.Shape)}
		}
		known, kerr := ComputeAnswer(in.Shape, dims, spec.Known)
		if kerr != nil {
			return nil, kerr
		}
		text = missingText(in.Shape, spec.Known, known, spec.Hidden)
		distractors, err = SelectDistractors(
			correct, rng, e.cfg.DistractorSpread, e.cfg.MaxDistractorAttempts)
	default:
		text = questionText(in.Shape, in.Kind)
		distractors, err = SelectDistractors(
			correct, rng, e.cfg.DistractorSpread, e.cfg.MaxDistractorAttempts)
	}
	if err != nil {
		return nil, err
	}

	options, correctLabel, err := AssembleOptions(correct, distractors, rng)
	if err != nil {
		return nil, err
	}

	fig, _ := figure.Build(in.Shape, dims, in.Kind == geometry.KindMissing)

	q := &Question{
		Text:         text,
		Options:      options,
		CorrectLabel: correctLabel,
		CorrectValue: correct,
		Shape:        in.Shape,
		Tier:         in.Tier,
		Kind:         in.Kind,
		Dims:         dims,
		Figure:       fig,
	}

	// Run validators in order.
	for _, v := range e.cfg.Validators {
		if verr := v.Validate(q); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}

func kindAllowed(s geometry.Shape, k geometry.Kind) bool {
	for _, allowed := range geometry.KindsFor(s) {
		if allowed == k {
			return true
		}
	}
	return false
}

// RandomInput draws a shape, tier and kind from the rng, restricted to the
// kinds the drawn shape supports. Used when the caller pins nothing.
func RandomInput(rng *rand.Rand) GenerateInput {
	shapes := geometry.AllShapes()
	tiers := geometry.AllTiers()
	shape := shapes[rng.Intn(len(shapes))]
	kinds := geometry.KindsFor(shape)
	return GenerateInput{
		Shape: shape,
		Tier:  tiers[rng.Intn(len(tiers))],
		Kind:  kinds[rng.Intn(len(kinds))],
	}
}
