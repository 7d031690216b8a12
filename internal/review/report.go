package review

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/geometriq/internal/llm"
)

// Result is the verdict for a single question.
type Result struct {
	Index    int      `json:"index"`
	Question string   `json:"question"`
	Image    string   `json:"image,omitempty"`
	Verdict  string   `json:"verdict,omitempty"`
	Reasons  []string `json:"reasons,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Report is the persisted outcome of a review run.
type Report struct {
	ReviewedAt   time.Time `json:"reviewed_at"`
	Model        string    `json:"model"`
	Total        int       `json:"total"`
	Passed       int       `json:"passed"`
	Failed       int       `json:"failed"`
	Errored      int       `json:"errored"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	EstCostUSD   float64   `json:"est_cost_usd"`
	Results      []Result  `json:"results"`
}

func buildReport(model string, results []Result, usages []llm.Usage) *Report {
	r := &Report{
		ReviewedAt: time.Now().UTC(),
		Model:      model,
		Total:      len(results),
		Results:    results,
	}

	for _, res := range results {
		switch {
		case res.Error != "":
			r.Errored++
		case res.Verdict == VerdictPass:
			r.Passed++
		case res.Verdict == VerdictFail:
			r.Failed++
		}
	}

	for _, u := range usages {
		r.InputTokens += u.InputTokens
		r.OutputTokens += u.OutputTokens
	}
	if cost := llm.LookupCost(model); cost != nil {
		r.EstCostUSD = cost.Cost(r.InputTokens, r.OutputTokens)
	}

	return r
}

// Save writes the report as indented JSON, creating parent directories.
func (r *Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
