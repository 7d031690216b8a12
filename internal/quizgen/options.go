package quizgen

import (
	"fmt"
	"math/rand"
	"strconv"
)

// AssembleOptions shuffles the correct value together with its distractors
// and assigns labels A through E in shuffled order. The correct label is
// located by comparing typed integers, never by matching formatted strings.
func AssembleOptions(correct int, distractors []int, rng *rand.Rand) ([]Option, string, error) {
	if len(distractors) != 4 {
		return nil, "", fmt.Errorf("need exactly 4 distractors, got %d", len(distractors))
	}

	values := make([]int, 0, 5)
	values = append(values, correct)
	values = append(values, distractors...)
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	options := make([]Option, 5)
	correctLabel := ""
	for i, v := range values {
		options[i] = Option{Label: Labels[i], Value: strconv.Itoa(v)}
		if v == correct {
			correctLabel = Labels[i]
		}
	}
	if correctLabel == "" {
		// Unreachable while distractor selection excludes the correct value.
		return nil, "", fmt.Errorf("correct value %d missing after shuffle", correct)
	}
	return options, correctLabel, nil
}
