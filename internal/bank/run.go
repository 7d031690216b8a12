package bank

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/geometriq/ent"
	"github.com/abhisek/geometriq/ent/run"
)

// RunData describes one generation or import run. An empty UID gets a fresh
// one on record.
type RunData struct {
	UID          string
	Seed         int64
	Total        int
	Skipped      int
	ManifestPath string
}

// RunRepo records run provenance.
type RunRepo interface {
	// Record stores a run and returns it with its assigned ID.
	Record(ctx context.Context, data RunData) (*ent.Run, error)

	// List returns runs, newest first.
	List(ctx context.Context, limit int) ([]*ent.Run, error)
}

type runRepo struct {
	client *ent.Client
}

func (r *runRepo) Record(ctx context.Context, data RunData) (*ent.Run, error) {
	uid := data.UID
	if uid == "" {
		uid = uuid.New().String()
	}
	created, err := r.client.Run.Create().
		SetUID(uid).
		SetSeed(data.Seed).
		SetTotal(data.Total).
		SetSkipped(data.Skipped).
		SetManifestPath(data.ManifestPath).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save run: %w", err)
	}
	return created, nil
}

func (r *runRepo) List(ctx context.Context, limit int) ([]*ent.Run, error) {
	q := r.client.Run.Query().Order(ent.Desc(run.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	runs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}
