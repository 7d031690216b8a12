package review

import (
	"fmt"
	"strings"

	"github.com/abhisek/geometriq/internal/manifest"
)

const systemPrompt = `You are a meticulous reviewer of multiple-choice geometry questions for school exam preparation.

Rules:
- Judge one question at a time. Return "pass" only when every check holds.
- The shape's measurements appear in a figure image you cannot see, so do not attempt to recompute the answer. Judge the record itself.
- All five options must be distinct values.
- The marked answer must be one of the labels A through E.
- The question text must match the declared shape and measure. A perimeter question must ask about perimeter, an area question about area, a symmetry question about lines of symmetry.
- Option values must be plausible for the declared measure. Lines of symmetry are small counts; areas and perimeters are positive.
- The question text must be unambiguous and grammatical.
- When the verdict is "fail", list each flaw as a separate reason in plain language.
- Do not fail a question for stylistic preferences. Only for inconsistency, ambiguity, or duplicate options.`

// buildUserMessage renders one record as a review request.
func buildUserMessage(rec manifest.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", rec.Question)
	fmt.Fprintf(&b, "Shape: %s\n", rec.Shape)
	fmt.Fprintf(&b, "Measure: %s\n", rec.Kind)
	fmt.Fprintf(&b, "Difficulty: %s\n", rec.Difficulty)

	b.WriteString("\nOptions:\n")
	for _, label := range []string{"A", "B", "C", "D", "E"} {
		fmt.Fprintf(&b, "%s. %s\n", label, rec.Options[label])
	}

	fmt.Fprintf(&b, "\nMarked answer: %s\n", rec.Answer)
	return b.String()
}
