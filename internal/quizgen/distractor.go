package quizgen

import (
	"math"
	"math/rand"
)

// SelectDistractors synthesizes four distinct positive wrong answers around
// the correct value. The sampling window is max(spread, 6, 20% of |correct|)
// so distractors scale with the answer's magnitude. The loop is bounded:
// when the budget runs out before four values are found it fails with a
// GenerationError.
func SelectDistractors(correct int, rng *rand.Rand, spread, maxAttempts int) ([]int, error) {
	window := int(math.Round(math.Abs(float64(correct)) * 0.2))
	if window < 6 {
		window = 6
	}
	if spread > window {
		window = spread
	}

	seen := map[int]bool{correct: true}
	out := make([]int, 0, 4)
	for attempt := 0; attempt < maxAttempts && len(out) < 4; attempt++ {
		delta := 1 + rng.Intn(window)
		if rng.Intn(2) == 0 {
			delta = -delta
		}
		v := correct + delta
		if v > 0 && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	if len(out) < 4 {
		return nil, &GenerationError{Stage: "distractors", Attempts: maxAttempts}
	}
	return out, nil
}

// SelectSymmetryDistractors draws four distinct values (excluding the correct
// count) from the shape's candidate pool. Symmetry counts are small
// non-negative integers, so the continuous spread used for measurements would
// produce implausible options here.
func SelectSymmetryDistractors(correct int, pool []int, rng *rand.Rand, maxAttempts int) ([]int, error) {
	candidates := make([]int, 0, len(pool)+1)
	candidates = append(candidates, pool...)
	inPool := false
	for _, v := range pool {
		if v == correct {
			inPool = true
			break
		}
	}
	if !inPool {
		candidates = append(candidates, correct)
	}

	seen := map[int]bool{correct: true}
	out := make([]int, 0, 4)
	for attempt := 0; attempt < maxAttempts && len(out) < 4; attempt++ {
		v := candidates[rng.Intn(len(candidates))]
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	if len(out) < 4 {
		return nil, &GenerationError{Stage: "symmetry-distractors", Attempts: maxAttempts}
	}
	return out, nil
}
