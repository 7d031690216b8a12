package bank

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/abhisek/geometriq/ent"
	"github.com/abhisek/geometriq/ent/predicate"
	"github.com/abhisek/geometriq/ent/question"
	"github.com/abhisek/geometriq/internal/geometry"
	"github.com/abhisek/geometriq/internal/manifest"
)

// ErrNoQuestions is returned when a draw matches nothing in the bank.
var ErrNoQuestions = errors.New("bank: no questions match the filter")

// Filter narrows question queries. Empty fields match everything.
type Filter struct {
	Difficulty string
	Shape      string
	Kind       string
}

// QuestionRepo manages the stored question set.
type QuestionRepo interface {
	// Import inserts manifest records, skipping ones already present.
	// Returns how many were added and how many were duplicates.
	Import(ctx context.Context, records []manifest.Record, runID int) (added, dups int, err error)

	// List returns matching questions, newest first.
	List(ctx context.Context, f Filter, limit int) ([]*ent.Question, error)

	// Random draws one matching question using the caller's source.
	Random(ctx context.Context, rng *rand.Rand, f Filter) (*ent.Question, error)

	// Count reports how many questions match.
	Count(ctx context.Context, f Filter) (int, error)

	// Reset deletes every question. Returns the number removed.
	Reset(ctx context.Context) (int, error)
}

type questionRepo struct {
	client *ent.Client
}

// RecordOf converts a stored question back into its manifest form.
func RecordOf(q *ent.Question) manifest.Record {
	return manifest.Record{
		Question: q.QuestionText,
		Options: map[string]string{
			"A": q.OptionA, "B": q.OptionB, "C": q.OptionC, "D": q.OptionD, "E": q.OptionE,
		},
		Answer:     q.Answer,
		Difficulty: geometry.Tier(q.Difficulty),
		Image:      q.Image,
		Shape:      geometry.Shape(q.Shape),
		Kind:       geometry.Kind(q.Kind),
	}
}

// Fingerprint hashes the learner-visible content of a record so the same
// question is never imported twice.
func Fingerprint(r manifest.Record) string {
	parts := []string{
		r.Question,
		r.Options["A"], r.Options["B"], r.Options["C"], r.Options["D"], r.Options["E"],
		r.Answer,
		string(r.Difficulty), string(r.Shape), string(r.Kind),
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

func (r *questionRepo) Import(ctx context.Context, records []manifest.Record, runID int) (int, int, error) {
	added, dups := 0, 0
	for i, rec := range records {
		for _, label := range []string{"A", "B", "C", "D", "E"} {
			if rec.Options[label] == "" {
				return added, dups, fmt.Errorf("import record %d: option %s missing", i, label)
			}
		}

		fp := Fingerprint(rec)
		exists, err := r.client.Question.Query().
			Where(question.Fingerprint(fp)).
			Exist(ctx)
		if err != nil {
			return added, dups, fmt.Errorf("check fingerprint: %w", err)
		}
		if exists {
			dups++
			continue
		}

		builder := r.client.Question.Create().
			SetFingerprint(fp).
			SetQuestionText(rec.Question).
			SetOptionA(rec.Options["A"]).
			SetOptionB(rec.Options["B"]).
			SetOptionC(rec.Options["C"]).
			SetOptionD(rec.Options["D"]).
			SetOptionE(rec.Options["E"]).
			SetAnswer(rec.Answer).
			SetDifficulty(string(rec.Difficulty)).
			SetShape(string(rec.Shape)).
			SetKind(string(rec.Kind)).
			SetImage(rec.Image)
		if runID > 0 {
			builder = builder.SetRunID(runID)
		}
		if _, err := builder.Save(ctx); err != nil {
			return added, dups, fmt.Errorf("save question %d: %w", i, err)
		}
		added++
	}
	return added, dups, nil
}

func (r *questionRepo) List(ctx context.Context, f Filter, limit int) ([]*ent.Question, error) {
	q := r.client.Question.Query().
		Where(filterPredicates(f)...).
		Order(ent.Desc(question.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	out, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return out, nil
}

func (r *questionRepo) Random(ctx context.Context, rng *rand.Rand, f Filter) (*ent.Question, error) {
	n, err := r.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNoQuestions
	}
	q, err := r.client.Question.Query().
		Where(filterPredicates(f)...).
		Order(ent.Asc(question.FieldID)).
		Offset(rng.Intn(n)).
		First(ctx)
	if err != nil {
		return nil, fmt.Errorf("draw question: %w", err)
	}
	return q, nil
}

func (r *questionRepo) Count(ctx context.Context, f Filter) (int, error) {
	n, err := r.client.Question.Query().
		Where(filterPredicates(f)...).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func (r *questionRepo) Reset(ctx context.Context) (int, error) {
	n, err := r.client.Question.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset questions: %w", err)
	}
	return n, nil
}

func filterPredicates(f Filter) []predicate.Question {
	var ps []predicate.Question
	if f.Difficulty != "" {
		ps = append(ps, question.Difficulty(f.Difficulty))
	}
	if f.Shape != "" {
		ps = append(ps, question.Shape(f.Shape))
	}
	if f.Kind != "" {
		ps = append(ps, question.Kind(f.Kind))
	}
	return ps
}
