package bank

import (
	"context"
	"fmt"

	"github.com/abhisek/geometriq/ent"
)

// AttemptData captures one practice answer.
type AttemptData struct {
	QuestionID int
	Chosen     string
	Correct    bool
	TimeMs     int
	Difficulty string
	Shape      string
	Kind       string
}

// Accuracy is a correct/total pair.
type Accuracy struct {
	Total   int
	Correct int
}

// Rate returns the fraction answered correctly, or 0 with no attempts.
func (a Accuracy) Rate() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Total)
}

// AttemptStats breaks practice accuracy down by question facets.
type AttemptStats struct {
	Overall      Accuracy
	ByDifficulty map[string]Accuracy
	ByShape      map[string]Accuracy
	ByKind       map[string]Accuracy
}

// AttemptRepo records and summarizes practice attempts.
type AttemptRepo interface {
	// Record stores one attempt.
	Record(ctx context.Context, data AttemptData) error

	// Stats aggregates accuracy across all attempts.
	Stats(ctx context.Context) (*AttemptStats, error)
}

type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Record(ctx context.Context, data AttemptData) error {
	_, err := r.client.Attempt.Create().
		SetQuestionID(data.QuestionID).
		SetChosen(data.Chosen).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		SetDifficulty(data.Difficulty).
		SetShape(data.Shape).
		SetKind(data.Kind).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Stats(ctx context.Context) (*AttemptStats, error) {
	attempts, err := r.client.Attempt.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	stats := &AttemptStats{
		ByDifficulty: map[string]Accuracy{},
		ByShape:      map[string]Accuracy{},
		ByKind:       map[string]Accuracy{},
	}
	bump := func(m map[string]Accuracy, key string, correct bool) {
		acc := m[key]
		acc.Total++
		if correct {
			acc.Correct++
		}
		m[key] = acc
	}
	for _, a := range attempts {
		stats.Overall.Total++
		if a.Correct {
			stats.Overall.Correct++
		}
		bump(stats.ByDifficulty, a.Difficulty, a.Correct)
		bump(stats.ByShape, a.Shape, a.Correct)
		bump(stats.ByKind, a.Kind, a.Correct)
	}
	return stats, nil
}
