// Package batch runs a blueprint: it fans question generation out over a
// bounded worker pool, renders each figure, and writes one manifest ordered
// by question index once every worker has finished.
package batch

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/geometriq/internal/blueprint"
	"github.com/abhisek/geometriq/internal/geometry"
	"github.com/abhisek/geometriq/internal/manifest"
	"github.com/abhisek/geometriq/internal/quizgen"
	"github.com/abhisek/geometriq/internal/render"
)

// ManifestName is the manifest filename inside the output directory.
const ManifestName = "questions.json"

// DefaultRetryBudget bounds regeneration attempts per question before the
// question is skipped.
const DefaultRetryBudget = 5

// Options wires the runner's collaborators.
type Options struct {
	Generator quizgen.Generator
	Renderer  render.Renderer
	Logger    *zap.Logger
	// Concurrency bounds the worker pool. Zero means max(4, NumCPU).
	Concurrency int
	// RetryBudget is the per-question regeneration budget. Zero means
	// DefaultRetryBudget.
	RetryBudget int
}

// Runner executes blueprints.
type Runner struct {
	gen     quizgen.Generator
	rend    render.Renderer
	log     *zap.Logger
	workers int
	retries int
}

// NewRunner builds a runner, filling unset options with defaults.
func NewRunner(opts Options) *Runner {
	workers := opts.Concurrency
	if workers <= 0 {
		workers = max(4, runtime.NumCPU())
	}
	retries := opts.RetryBudget
	if retries <= 0 {
		retries = DefaultRetryBudget
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	rend := opts.Renderer
	if rend == nil {
		rend = render.NewPNG()
	}
	return &Runner{
		gen:     opts.Generator,
		rend:    rend,
		log:     log,
		workers: workers,
		retries: retries,
	}
}

// Result summarizes one run.
type Result struct {
	// Records are the manifest records in question-index order.
	Records []manifest.Record
	// Skipped lists the 1-based indices abandoned after the retry budget.
	Skipped []int
	// Seed is the base seed the run used.
	Seed int64
	// ManifestPath is where the manifest was written.
	ManifestPath string
	// Elapsed is the wall-clock run duration.
	Elapsed time.Duration
}

// Run generates every work item in the blueprint. Questions fail
// independently: a question that exhausts its retry budget is skipped with
// a warning while the rest of the batch completes. Configuration errors
// and renderer failures abort the whole run.
func (r *Runner) Run(ctx context.Context, bp *blueprint.Blueprint) (*Result, error) {
	if r.gen == nil {
		return nil, errors.New("batch: no generator configured")
	}

	start := time.Now()
	base := time.Now().UnixNano()
	if bp.Seed != nil {
		base = *bp.Seed
	}
	workers := r.workers
	if bp.Concurrency > 0 {
		workers = bp.Concurrency
	}

	items := bp.Expand()
	slots := make([]*manifest.Record, len(items))

	r.log.Info("starting batch",
		zap.Int("questions", len(items)),
		zap.Int("workers", workers),
		zap.Int64("seed", base),
		zap.String("out_dir", bp.OutDir),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := r.generateOne(base, item, bp.OutDir)
			if err != nil {
				return err
			}
			// rec is nil when the question was skipped.
			slots[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Seed: base, ManifestPath: filepath.Join(bp.OutDir, ManifestName)}
	for i, rec := range slots {
		if rec == nil {
			result.Skipped = append(result.Skipped, items[i].Index)
			continue
		}
		result.Records = append(result.Records, *rec)
	}

	if err := manifest.Validate(result.Records); err != nil {
		return nil, fmt.Errorf("batch: generated manifest is invalid: %w", err)
	}
	if err := manifest.Save(result.ManifestPath, result.Records); err != nil {
		return nil, err
	}

	result.Elapsed = time.Since(start)
	r.log.Info("batch finished",
		zap.Int("generated", len(result.Records)),
		zap.Int("skipped", len(result.Skipped)),
		zap.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

// generateOne produces the record for a single work item, retrying with a
// freshly derived stream on retryable failures. It returns (nil, nil) when
// the retry budget runs out.
func (r *Runner) generateOne(base int64, item blueprint.WorkItem, outDir string) (*manifest.Record, error) {
	var lastErr error
	for attempt := 0; attempt < r.retries; attempt++ {
		rng := rand.New(rand.NewSource(DeriveSeed(base, item.Index, attempt)))
		in := resolveInput(rng, item)

		q, err := r.gen.Generate(rng, in)
		if err != nil {
			var cfgErr *quizgen.ConfigurationError
			if errors.As(err, &cfgErr) {
				return nil, fmt.Errorf("batch: question %d: %w", item.Index, err)
			}
			lastErr = err
			r.log.Debug("regenerating question",
				zap.Int("index", item.Index),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			continue
		}

		image := imagePath(q.Tier, item.Index)
		if err := r.rend.Render(q.Figure, filepath.Join(outDir, image)); err != nil {
			return nil, fmt.Errorf("batch: question %d: %w", item.Index, err)
		}
		rec := manifest.FromQuestion(q, image)
		return &rec, nil
	}

	r.log.Warn("skipping question after exhausting retries",
		zap.Int("index", item.Index),
		zap.Int("budget", r.retries),
		zap.Error(lastErr),
	)
	return nil, nil
}

// imagePath returns the manifest-relative image location for a question,
// keyed by its 1-based index so no two workers collide.
func imagePath(tier geometry.Tier, index int) string {
	return filepath.Join("images", string(tier), fmt.Sprintf("Q%d.png", index))
}

// resolveInput fills a work item's unpinned fields from the question's own
// stream. Draw order is fixed so a given seed always resolves to the same
// input. A pinned kind restricts the shape draw to shapes that support it.
func resolveInput(rng *rand.Rand, item blueprint.WorkItem) quizgen.GenerateInput {
	shape, tier, kind := item.Shape, item.Tier, item.Kind
	if shape == "" {
		candidates := geometry.AllShapes()
		if kind != "" {
			candidates = shapesSupporting(kind)
		}
		shape = candidates[rng.Intn(len(candidates))]
	}
	if tier == "" {
		tiers := geometry.AllTiers()
		tier = tiers[rng.Intn(len(tiers))]
	}
	if kind == "" {
		kinds := geometry.KindsFor(shape)
		kind = kinds[rng.Intn(len(kinds))]
	}
	return quizgen.GenerateInput{Shape: shape, Tier: tier, Kind: kind}
}

func shapesSupporting(k geometry.Kind) []geometry.Shape {
	var out []geometry.Shape
	for _, s := range geometry.AllShapes() {
		for _, allowed := range geometry.KindsFor(s) {
			if allowed == k {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
