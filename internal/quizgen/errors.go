package quizgen

import "fmt"

// ConfigurationError indicates the requested shape/tier/kind combination is
// not generatable. It is fatal for that request and never retried.
type ConfigurationError struct {
	Field string // "shape", "tier" or "kind"
	Value string
	Hint  string // optional detail, e.g. "symmetry is undefined for the circle"
}

func (e *ConfigurationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Hint)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// GenerationError indicates a bounded sampling loop exhausted its attempt
// budget. The caller may regenerate the whole question with fresh random
// draws; the engine never retries past the cap.
type GenerationError struct {
	Stage    string // sampling loop that gave up, e.g. "distractors"
	Attempts int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s sampling exhausted after %d attempts", e.Stage, e.Attempts)
}
