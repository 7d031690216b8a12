// Package manifest defines the on-disk question format shared by the
// generator, the bank and the study tools. A manifest is a JSON array of
// records ordered by question index.
package manifest

import (
	"github.com/abhisek/geometriq/internal/geometry"
	"github.com/abhisek/geometriq/internal/quizgen"
)

// Record is one question as persisted in a manifest file. Options map the
// labels A through E to formatted values; Answer carries the correct label,
// never the formatted value.
type Record struct {
	Question   string            `json:"question"`
	Options    map[string]string `json:"options"`
	Answer     string            `json:"answer"`
	Difficulty geometry.Tier     `json:"difficulty"`
	Image      string            `json:"image"`
	Shape      geometry.Shape    `json:"shape"`
	Kind       geometry.Kind     `json:"kind"`
}

// FromQuestion flattens a generated question into its manifest record.
// image is the path the figure was (or will be) rendered to, relative to
// the manifest's directory.
func FromQuestion(q *quizgen.Question, image string) Record {
	options := make(map[string]string, len(q.Options))
	for _, opt := range q.Options {
		options[opt.Label] = opt.Value
	}
	return Record{
		Question:   q.Text,
		Options:    options,
		Answer:     q.CorrectLabel,
		Difficulty: q.Tier,
		Image:      image,
		Shape:      q.Shape,
		Kind:       q.Kind,
	}
}

// CorrectValue returns the formatted value behind the answer label.
func (r Record) CorrectValue() (string, bool) {
	v, ok := r.Options[r.Answer]
	return v, ok
}
