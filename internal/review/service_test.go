package review

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/geometriq/internal/geometry"
	"github.com/abhisek/geometriq/internal/llm"
	"github.com/abhisek/geometriq/internal/manifest"
)

func sampleRecord(text string) manifest.Record {
	return manifest.Record{
		Question: text,
		Options: map[string]string{
			"A": "21", "B": "25", "C": "28", "D": "30", "E": "19",
		},
		Answer:     "B",
		Difficulty: geometry.TierEasy,
		Image:      "images/easy/Q1.png",
		Shape:      geometry.ShapeSquare,
		Kind:       geometry.KindArea,
	}
}

// fastConfig keeps the limiter out of the way and pins result order to
// record order by reviewing serially.
func fastConfig() Config {
	return Config{
		RequestsPerSecond: 1000,
		Burst:             1000,
		Concurrency:       1,
		MaxTokens:         512,
	}
}

func TestRun_CountsVerdicts(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{
			Content: json.RawMessage(`{"verdict":"pass","reasons":[]}`),
			Usage:   llm.Usage{InputTokens: 100, OutputTokens: 20},
		},
		llm.MockResponse{
			Content: json.RawMessage(`{"verdict":"fail","reasons":["options B and D hold the same value"]}`),
			Usage:   llm.Usage{InputTokens: 110, OutputTokens: 30},
		},
		llm.MockResponse{
			Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
		},
	)
	svc := NewService(mock, fastConfig(), nil)

	records := []manifest.Record{
		sampleRecord("q1"), sampleRecord("q2"), sampleRecord("q3"),
	}
	report, err := svc.Run(context.Background(), records)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.Total != 3 || report.Passed != 1 || report.Failed != 1 || report.Errored != 1 {
		t.Errorf("counts = total %d passed %d failed %d errored %d",
			report.Total, report.Passed, report.Failed, report.Errored)
	}
	if report.Results[0].Verdict != VerdictPass {
		t.Errorf("result 0 verdict = %q", report.Results[0].Verdict)
	}
	if len(report.Results[1].Reasons) != 1 {
		t.Errorf("result 1 reasons = %v", report.Results[1].Reasons)
	}
	if report.Results[2].Error == "" {
		t.Error("result 2 should carry the provider error")
	}
	for i, res := range report.Results {
		if res.Index != i+1 {
			t.Errorf("result %d has index %d", i, res.Index)
		}
	}
	if report.InputTokens != 210 || report.OutputTokens != 50 {
		t.Errorf("usage = %d in / %d out", report.InputTokens, report.OutputTokens)
	}
}

func TestRun_MalformedVerdictRecordedAsError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json`)},
	)
	svc := NewService(mock, fastConfig(), nil)

	report, err := svc.Run(context.Background(), []manifest.Record{sampleRecord("q1")})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Errored != 1 {
		t.Errorf("errored = %d, want 1", report.Errored)
	}
	if !strings.Contains(report.Results[0].Error, "parse verdict") {
		t.Errorf("error = %q", report.Results[0].Error)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"verdict":"pass","reasons":[]}`)},
	)
	svc := NewService(mock, fastConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Run(ctx, []manifest.Record{sampleRecord("q1")})
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
}

func TestRun_SetsReviewPurpose(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"verdict":"pass","reasons":[]}`)},
	)
	svc := NewService(mock, fastConfig(), nil)

	if _, err := svc.Run(context.Background(), []manifest.Record{sampleRecord("q1")}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != VerdictSchema {
		t.Error("request should carry the verdict schema")
	}
	if req.System == "" {
		t.Error("request should carry the reviewer system prompt")
	}
}

func TestNewService_AppliesDefaults(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), Config{}, nil)
	def := DefaultConfig()
	if svc.cfg.Concurrency != def.Concurrency {
		t.Errorf("concurrency = %d, want %d", svc.cfg.Concurrency, def.Concurrency)
	}
	if svc.cfg.MaxTokens != def.MaxTokens {
		t.Errorf("max tokens = %d, want %d", svc.cfg.MaxTokens, def.MaxTokens)
	}
}

func TestReport_Save(t *testing.T) {
	report := buildReport("gpt-4o-mini",
		[]Result{{Index: 1, Question: "q1", Verdict: VerdictPass}},
		[]llm.Usage{{InputTokens: 1_000_000, OutputTokens: 1_000_000}},
	)
	if report.EstCostUSD <= 0 {
		t.Errorf("expected a cost estimate for a priced model, got %v", report.EstCostUSD)
	}

	path := filepath.Join(t.TempDir(), "reports", "review.json")
	if err := report.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var loaded Report
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if loaded.Model != "gpt-4o-mini" || loaded.Passed != 1 {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestBuildReport_UnknownModelHasNoCost(t *testing.T) {
	report := buildReport("mock",
		[]Result{{Index: 1, Verdict: VerdictPass}},
		[]llm.Usage{{InputTokens: 500, OutputTokens: 100}},
	)
	if report.EstCostUSD != 0 {
		t.Errorf("cost = %v, want 0 for unpriced model", report.EstCostUSD)
	}
	if report.InputTokens != 500 {
		t.Errorf("input tokens = %d", report.InputTokens)
	}
}
