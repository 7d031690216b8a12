package worksheet

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"strings"

	"github.com/abhisek/geometriq/internal/geometry"
	"github.com/abhisek/geometriq/internal/manifest"
	"github.com/abhisek/geometriq/internal/quizgen"
)

// Sampling caps applied when SampleOptions leaves them zero.
const (
	DefaultPerShape = 4
	DefaultTotal    = 50
)

// SampleOptions controls which records a worksheet draws from and how many.
type SampleOptions struct {
	// ShapePrefix keeps only records whose shape name starts with the
	// prefix, compared case-insensitively. Empty keeps every shape.
	ShapePrefix string
	// PerShape caps how many questions any single shape contributes.
	PerShape int
	// Total caps the overall question count.
	Total int
}

func (o SampleOptions) withDefaults() SampleOptions {
	if o.PerShape <= 0 {
		o.PerShape = DefaultPerShape
	}
	if o.Total <= 0 {
		o.Total = DefaultTotal
	}
	return o
}

// Sample selects worksheet questions from records. Duplicates are dropped
// first, then each shape contributes up to PerShape questions and the
// result is shuffled and cut to Total. The caller owns rng, so a fixed
// seed reproduces the same selection from the same records.
func Sample(records []manifest.Record, opts SampleOptions, rng *rand.Rand) []manifest.Record {
	opts = opts.withDefaults()
	prefix := strings.ToLower(opts.ShapePrefix)

	buckets := make(map[geometry.Shape][]manifest.Record)
	seen := make(map[string]bool)
	for _, rec := range records {
		if prefix != "" && !strings.HasPrefix(strings.ToLower(string(rec.Shape)), prefix) {
			continue
		}
		sig := signature(rec)
		if seen[sig] {
			continue
		}
		seen[sig] = true
		buckets[rec.Shape] = append(buckets[rec.Shape], rec)
	}

	// Shapes are visited in catalogue order so the pick sequence depends
	// only on the records and the seed.
	var selected []manifest.Record
	for _, shape := range geometry.AllShapes() {
		bucket := buckets[shape]
		if len(bucket) == 0 {
			continue
		}
		rng.Shuffle(len(bucket), func(i, j int) {
			bucket[i], bucket[j] = bucket[j], bucket[i]
		})
		take := opts.PerShape
		if take > len(bucket) {
			take = len(bucket)
		}
		selected = append(selected, bucket[:take]...)
	}

	rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	if len(selected) > opts.Total {
		selected = selected[:opts.Total]
	}
	return selected
}

// signature identifies a question by its visible content. Two records that
// print identically on paper count as one, whatever run produced them.
func signature(r manifest.Record) string {
	parts := make([]string, 0, len(quizgen.Labels)+2)
	parts = append(parts, r.Question)
	for _, label := range quizgen.Labels {
		parts = append(parts, r.Options[label])
	}
	parts = append(parts, r.Answer)
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
