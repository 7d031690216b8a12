package review

import "github.com/abhisek/geometriq/internal/llm"

// Verdict values returned by the reviewer.
const (
	VerdictPass = "pass"
	VerdictFail = "fail"
)

// Verdict is the reviewer's judgement of a single question.
type Verdict struct {
	Verdict string   `json:"verdict"`
	Reasons []string `json:"reasons"`
}

// VerdictSchema defines the JSON schema for review responses.
var VerdictSchema = &llm.Schema{
	Name:        "review-verdict",
	Description: "A pass/fail judgement of one multiple-choice geometry question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"verdict": map[string]any{
				"type":        "string",
				"enum":        []any{"pass", "fail"},
				"description": "pass if the question is sound, fail otherwise",
			},
			"reasons": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Specific flaws found. Empty when the verdict is pass.",
			},
		},
		"required":             []any{"verdict", "reasons"},
		"additionalProperties": false,
	},
}
