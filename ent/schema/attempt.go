package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt records a single answer given during practice. Difficulty, shape
// and kind are denormalized from the question so accuracy breakdowns never
// need a join.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.Int("question_id").
			Comment("Bank ID of the question answered"),
		field.String("chosen").
			NotEmpty().
			Comment("Label the learner picked, A through E"),
		field.Bool("correct").
			Comment("Whether the chosen label was the answer"),
		field.Int("time_ms").
			Comment("Milliseconds from prompt to answer"),
		field.String("difficulty").NotEmpty(),
		field.String("shape").NotEmpty(),
		field.String("kind").NotEmpty(),
		field.Time("answered_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("correct"),
		index.Fields("answered_at"),
	}
}
