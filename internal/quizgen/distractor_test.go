package quizgen

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSelectDistractors_FourDistinctPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, correct := range []int{1, 3, 7, 25, 100, 9801} {
		got, err := SelectDistractors(correct, rng, 8, 200)
		if err != nil {
			t.Fatalf("correct=%d: %v", correct, err)
		}
		if len(got) != 4 {
			t.Fatalf("correct=%d: got %d distractors", correct, len(got))
		}
		seen := map[int]bool{}
		for _, v := range got {
			if v <= 0 {
				t.Errorf("correct=%d: distractor %d not positive", correct, v)
			}
			if v == correct {
				t.Errorf("correct=%d: distractor equals the answer", correct)
			}
			if seen[v] {
				t.Errorf("correct=%d: duplicate distractor %d", correct, v)
			}
			seen[v] = true
		}
	}
}

func TestSelectDistractors_WindowScalesWithMagnitude(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	const correct = 100
	// 20% of 100 exceeds both the configured spread and the floor of 6.
	const window = 20
	for i := 0; i < 50; i++ {
		got, err := SelectDistractors(correct, rng, 8, 200)
		if err != nil {
			t.Fatalf("SelectDistractors: %v", err)
		}
		for _, v := range got {
			d := v - correct
			if d < 0 {
				d = -d
			}
			if d < 1 || d > window {
				t.Errorf("distractor %d at distance %d, want within [1,%d]", v, d, window)
			}
		}
	}
}

func TestSelectDistractors_SmallAnswerUsesSpreadFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		got, err := SelectDistractors(3, rng, 8, 200)
		if err != nil {
			t.Fatalf("SelectDistractors: %v", err)
		}
		for _, v := range got {
			if v > 3+8 {
				t.Errorf("distractor %d beyond 3+8", v)
			}
		}
	}
}

func TestSelectDistractors_BudgetExhausted(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := SelectDistractors(25, rng, 8, 3)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %v", err)
	}
	if genErr.Stage != "distractors" {
		t.Errorf("unexpected stage %q", genErr.Stage)
	}
	if genErr.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", genErr.Attempts)
	}
}

func TestSelectSymmetryDistractors_DrawsFromPool(t *testing.T) {
	pool := []int{0, 1, 2, 3, 4, 6}
	allowed := map[int]bool{0: true, 1: true, 2: true, 3: true, 6: true}
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 50; i++ {
		got, err := SelectSymmetryDistractors(4, pool, rng, 200)
		if err != nil {
			t.Fatalf("SelectSymmetryDistractors: %v", err)
		}
		if len(got) != 4 {
			t.Fatalf("got %d distractors", len(got))
		}
		seen := map[int]bool{}
		for _, v := range got {
			if !allowed[v] {
				t.Errorf("distractor %d not in pool (or equals the answer)", v)
			}
			if seen[v] {
				t.Errorf("duplicate distractor %d", v)
			}
			seen[v] = true
		}
	}
}

func TestSelectSymmetryDistractors_CorrectOutsidePool(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	got, err := SelectSymmetryDistractors(5, []int{0, 1, 2, 3, 4}, rng, 200)
	if err != nil {
		t.Fatalf("SelectSymmetryDistractors: %v", err)
	}
	for _, v := range got {
		if v == 5 {
			t.Errorf("distractor equals the answer")
		}
	}
}

func TestSelectSymmetryDistractors_PoolTooSmall(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	_, err := SelectSymmetryDistractors(0, []int{0, 1}, rng, 10_000)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %v", err)
	}
	if genErr.Stage != "symmetry-distractors" {
		t.Errorf("unexpected stage %q", genErr.Stage)
	}
}
