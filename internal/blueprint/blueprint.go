// Package blueprint declares generation runs as YAML plans. A blueprint
// pins the question count, seeding and any shape/tier/kind mix; expansion
// turns it into the deterministic work-item list the batch runner executes.
package blueprint

import (
	"github.com/abhisek/geometriq/internal/geometry"
)

// SchemaVersion is the major schema version this build understands.
const SchemaVersion = "v1"

// Blueprint is a declarative plan for one generation run.
//
//	schema: v1
//	count: 30
//	seed: 42
//	out_dir: out
//	mix:
//	  - shape: square
//	    tier: easy
//	    kind: area
//	    count: 10
//	  - tier: difficult
//	    count: 20
type Blueprint struct {
	// Schema is the blueprint schema version, gated on its major version.
	Schema string `yaml:"schema" validate:"required"`
	// Count is the total number of questions. With a mix it may be
	// omitted (the mix total applies) or exceed the mix total, leaving
	// the remainder unpinned. It must never undercut the mix total.
	Count int `yaml:"count,omitempty" validate:"omitempty,min=1"`
	// Seed fixes the base seed for reproducible runs. Nil means seed from
	// the current time.
	Seed *int64 `yaml:"seed,omitempty"`
	// OutDir is where the manifest and images land. Defaults to ".".
	OutDir string `yaml:"out_dir,omitempty"`
	// Concurrency bounds the worker pool. Zero lets the runner decide.
	Concurrency int `yaml:"concurrency,omitempty" validate:"omitempty,min=1"`
	// Mix pins portions of the run to specific shapes, tiers or kinds.
	Mix []Mix `yaml:"mix,omitempty" validate:"omitempty,dive"`
}

// Mix pins Count questions to the given shape, tier and kind. Empty fields
// stay unpinned and are drawn from the question's own random stream.
type Mix struct {
	Shape string `yaml:"shape,omitempty"`
	Tier  string `yaml:"tier,omitempty"`
	Kind  string `yaml:"kind,omitempty"`
	Count int    `yaml:"count" validate:"required,min=1"`
}

// WorkItem is one question slot in a run. Zero-valued fields mean the
// generator draws them at random.
type WorkItem struct {
	// Index is the 1-based question number; it keys the image filename.
	Index int
	Shape geometry.Shape
	Tier  geometry.Tier
	Kind  geometry.Kind
}

// Total returns the number of questions the blueprint will generate.
func (b *Blueprint) Total() int {
	total := 0
	for _, m := range b.Mix {
		total += m.Count
	}
	if b.Count > total {
		return b.Count
	}
	return total
}

// Expand lists the run's work items in order: mix entries first, in
// declaration order, then any unpinned remainder when Count exceeds the
// mix total.
func (b *Blueprint) Expand() []WorkItem {
	total := b.Total()
	items := make([]WorkItem, 0, total)
	index := 1
	for _, m := range b.Mix {
		for i := 0; i < m.Count; i++ {
			items = append(items, WorkItem{
				Index: index,
				Shape: geometry.Shape(m.Shape),
				Tier:  geometry.Tier(m.Tier),
				Kind:  geometry.Kind(m.Kind),
			})
			index++
		}
	}
	for index <= total {
		items = append(items, WorkItem{Index: index})
		index++
	}
	return items
}
