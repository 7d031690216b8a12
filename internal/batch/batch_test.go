package batch

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/abhisek/geometriq/internal/blueprint"
	"github.com/abhisek/geometriq/internal/figure"
	"github.com/abhisek/geometriq/internal/geometry"
	"github.com/abhisek/geometriq/internal/quizgen"
	"github.com/abhisek/geometriq/internal/render"
)

func testBlueprint(dir string, count int, seed int64) *blueprint.Blueprint {
	return &blueprint.Blueprint{
		Schema: "v1",
		Count:  count,
		Seed:   &seed,
		OutDir: dir,
	}
}

func TestDeriveSeed(t *testing.T) {
	if DeriveSeed(42, 1, 0) != DeriveSeed(42, 1, 0) {
		t.Error("derivation is not stable")
	}
	if DeriveSeed(42, 1, 0) == DeriveSeed(42, 2, 0) {
		t.Error("indices share a stream")
	}
	if DeriveSeed(42, 1, 0) == DeriveSeed(42, 1, 1) {
		t.Error("retries share a stream")
	}
	if DeriveSeed(42, 1, 0) == DeriveSeed(43, 1, 0) {
		t.Error("base seeds share a stream")
	}
	for i := 0; i < 100; i++ {
		if DeriveSeed(int64(i), i, i) < 0 {
			t.Fatal("derived seed went negative")
		}
	}
}

func TestRunner_RunIsReproducible(t *testing.T) {
	run := func(dir string) []string {
		r := NewRunner(Options{
			Generator: quizgen.New(quizgen.DefaultConfig()),
			Renderer:  render.Discard{},
		})
		res, err := r.Run(context.Background(), testBlueprint(dir, 8, 99))
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if len(res.Skipped) != 0 {
			t.Fatalf("unexpected skips: %v", res.Skipped)
		}
		out := make([]string, 0, len(res.Records))
		for _, rec := range res.Records {
			out = append(out, rec.Question+"|"+rec.Answer+"|"+rec.Image)
		}
		return out
	}

	first := run(t.TempDir())
	second := run(t.TempDir())
	if len(first) != 8 {
		t.Fatalf("generated %d records, want 8", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("record %d diverged:\n%s\n%s", i, first[i], second[i])
		}
	}
}

func TestRunner_ManifestOrderedByIndex(t *testing.T) {
	dir := t.TempDir()
	r := NewRunner(Options{
		Generator:   quizgen.New(quizgen.DefaultConfig()),
		Renderer:    render.Discard{},
		Concurrency: 4,
	})
	res, err := r.Run(context.Background(), testBlueprint(dir, 12, 7))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Records) != 12 {
		t.Fatalf("generated %d records", len(res.Records))
	}
	seen := map[string]bool{}
	for i, rec := range res.Records {
		want := "Q" + strconv.Itoa(i+1) + ".png"
		if filepath.Base(rec.Image) != want {
			t.Errorf("record %d image %q, want basename %s", i, rec.Image, want)
		}
		if seen[rec.Image] {
			t.Errorf("duplicate image path %q", rec.Image)
		}
		seen[rec.Image] = true
	}

	if _, err := os.Stat(filepath.Join(dir, ManifestName)); err != nil {
		t.Errorf("manifest not written: %v", err)
	}
}

func TestRunner_MixPinsRespected(t *testing.T) {
	dir := t.TempDir()
	seed := int64(5)
	bp := &blueprint.Blueprint{
		Schema: "v1",
		Seed:   &seed,
		OutDir: dir,
		Mix: []blueprint.Mix{
			{Shape: "square", Tier: "easy", Kind: "area", Count: 5},
			{Kind: "symmetry", Count: 5},
		},
	}
	r := NewRunner(Options{
		Generator: quizgen.New(quizgen.DefaultConfig()),
		Renderer:  render.Discard{},
	})
	res, err := r.Run(context.Background(), bp)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Records) != 10 {
		t.Fatalf("generated %d records", len(res.Records))
	}
	for _, rec := range res.Records[:5] {
		if rec.Shape != geometry.ShapeSquare || rec.Difficulty != geometry.TierEasy || rec.Kind != geometry.KindArea {
			t.Errorf("pin lost: %+v", rec)
		}
	}
	for _, rec := range res.Records[5:] {
		if rec.Kind != geometry.KindSymmetry {
			t.Errorf("kind pin lost: %+v", rec)
		}
		if rec.Shape == geometry.ShapeCircle {
			t.Errorf("symmetry question drawn for the circle")
		}
	}
}

// failingGenerator always reports an exhausted distractor search.
type failingGenerator struct{ calls atomic.Int32 }

func (g *failingGenerator) Generate(*rand.Rand, quizgen.GenerateInput) (*quizgen.Question, error) {
	g.calls.Add(1)
	return nil, &quizgen.GenerationError{Stage: "distractors", Attempts: 200}
}

func TestRunner_SkipsAfterRetryBudget(t *testing.T) {
	dir := t.TempDir()
	gen := &failingGenerator{}
	r := NewRunner(Options{
		Generator:   gen,
		Renderer:    render.Discard{},
		RetryBudget: 3,
		Concurrency: 2,
	})
	res, err := r.Run(context.Background(), testBlueprint(dir, 4, 1))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Records) != 0 {
		t.Errorf("expected no records, got %d", len(res.Records))
	}
	if len(res.Skipped) != 4 {
		t.Errorf("skipped %v, want all four indices", res.Skipped)
	}
	if got := gen.calls.Load(); got != 12 {
		t.Errorf("generator called %d times, want 4 questions x 3 attempts", got)
	}
	// The manifest still lands, holding an empty array.
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		t.Fatalf("manifest missing: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("manifest = %q, want []", data)
	}
}

// misconfiguredGenerator reports a configuration fault.
type misconfiguredGenerator struct{}

func (misconfiguredGenerator) Generate(*rand.Rand, quizgen.GenerateInput) (*quizgen.Question, error) {
	return nil, &quizgen.ConfigurationError{Field: "kind", Value: "symmetry"}
}

func TestRunner_ConfigurationErrorAborts(t *testing.T) {
	r := NewRunner(Options{
		Generator: misconfiguredGenerator{},
		Renderer:  render.Discard{},
	})
	_, err := r.Run(context.Background(), testBlueprint(t.TempDir(), 3, 1))
	var cfgErr *quizgen.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected the configuration error to surface, got %v", err)
	}
}

// countingRenderer records every path it is asked to draw.
type countingRenderer struct {
	mu    sync.Mutex
	paths []string
}

func (r *countingRenderer) Render(_ *figure.Figure, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return nil
}

func TestRunner_RendersOneImagePerQuestion(t *testing.T) {
	dir := t.TempDir()
	rend := &countingRenderer{}
	r := NewRunner(Options{
		Generator: quizgen.New(quizgen.DefaultConfig()),
		Renderer:  rend,
	})
	res, err := r.Run(context.Background(), testBlueprint(dir, 6, 11))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rend.paths) != len(res.Records) {
		t.Errorf("rendered %d images for %d records", len(rend.paths), len(res.Records))
	}
	for _, p := range rend.paths {
		if !strings.HasPrefix(p, dir) {
			t.Errorf("image %q escaped the output dir", p)
		}
	}
}

func TestRunner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRunner(Options{
		Generator: quizgen.New(quizgen.DefaultConfig()),
		Renderer:  render.Discard{},
	})
	if _, err := r.Run(ctx, testBlueprint(t.TempDir(), 4, 1)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestResolveInput_PinnedKindRestrictsShapeDraw(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 300; i++ {
		in := resolveInput(rng, blueprint.WorkItem{Index: 1, Kind: geometry.KindSymmetry})
		if in.Shape == geometry.ShapeCircle {
			t.Fatal("symmetry draw picked the circle")
		}
		if in.Kind != geometry.KindSymmetry {
			t.Fatal("pinned kind lost")
		}
	}
}
