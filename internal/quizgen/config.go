package quizgen

// Config controls the generation engine.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// DistractorSpread is the minimum sampling window for numeric
	// distractors. The effective window widens with the magnitude of the
	// correct answer so distractors stay proportionate.
	DistractorSpread int

	// MaxDistractorAttempts caps the distractor sampling loops before
	// they fail with a GenerationError.
	MaxDistractorAttempts int

	// MaxDimensionAttempts caps scalene-triangle resampling.
	MaxDimensionAttempts int
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&AnswerCheckValidator{},
		},
		DistractorSpread:      8,
		MaxDistractorAttempts: 200,
		MaxDimensionAttempts:  100,
	}
}
