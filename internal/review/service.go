package review

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/abhisek/geometriq/internal/llm"
	"github.com/abhisek/geometriq/internal/manifest"
)

// Config tunes a review run.
type Config struct {
	// RequestsPerSecond caps the sustained request rate against the provider.
	RequestsPerSecond float64

	// Burst allows short spikes above the sustained rate.
	Burst int

	// Concurrency bounds the number of in-flight reviews.
	Concurrency int

	// MaxTokens is the response budget per verdict.
	MaxTokens int

	// Temperature for the reviewer. Zero keeps verdicts stable.
	Temperature float64
}

// DefaultConfig returns conservative limits that stay inside free-tier
// provider quotas.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 2,
		Burst:             2,
		Concurrency:       4,
		MaxTokens:         1024,
	}
}

// Service runs an LLM review pass over generated questions.
type Service struct {
	provider llm.Provider
	limiter  *rate.Limiter
	logger   *zap.Logger
	cfg      Config
}

// NewService creates a review service. Zero config fields fall back to
// DefaultConfig values.
func NewService(provider llm.Provider, cfg Config, logger *zap.Logger) *Service {
	def := DefaultConfig()
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = def.RequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = def.Burst
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = def.Concurrency
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = def.MaxTokens
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		logger:   logger,
		cfg:      cfg,
	}
}

// Run reviews every record and returns the aggregated report.
// Provider failures mark the affected question as errored and the run
// continues. Only context cancellation aborts the whole run.
func (s *Service) Run(ctx context.Context, records []manifest.Record) (*Report, error) {
	ctx = llm.WithPurpose(ctx, "question-review")

	results := make([]Result, len(records))
	usages := make([]llm.Usage, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)

	for i, rec := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, usage, err := s.reviewOne(gctx, i+1, rec)
			if err != nil {
				return err
			}
			results[i] = res
			usages[i] = usage
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("review run: %w", err)
	}

	report := buildReport(s.provider.ModelID(), results, usages)
	s.logger.Info("review finished",
		zap.Int("total", report.Total),
		zap.Int("passed", report.Passed),
		zap.Int("failed", report.Failed),
		zap.Int("errored", report.Errored),
	)
	return report, nil
}

// reviewOne obtains a verdict for a single record. The returned error is
// non-nil only for context cancellation.
func (s *Service) reviewOne(ctx context.Context, index int, rec manifest.Record) (Result, llm.Usage, error) {
	res := Result{Index: index, Question: rec.Question, Image: rec.Image}

	if err := s.limiter.Wait(ctx); err != nil {
		return res, llm.Usage{}, err
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(rec)},
		},
		Schema:      VerdictSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return res, llm.Usage{}, ctx.Err()
		}
		s.logger.Warn("review request failed",
			zap.Int("question", index),
			zap.Error(err),
		)
		res.Error = err.Error()
		return res, llm.Usage{}, nil
	}

	var v Verdict
	if err := json.Unmarshal(resp.Content, &v); err != nil {
		res.Error = fmt.Sprintf("parse verdict: %v", err)
		return res, resp.Usage, nil
	}

	res.Verdict = v.Verdict
	res.Reasons = v.Reasons
	if v.Verdict == VerdictFail {
		s.logger.Warn("question failed review",
			zap.Int("question", index),
			zap.Strings("reasons", v.Reasons),
		)
	}
	return res, resp.Usage, nil
}
