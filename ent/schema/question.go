package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a generated multiple-choice question stored in the bank.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("fingerprint").
			Unique().
			Immutable().
			Comment("Content hash used to deduplicate imports"),
		field.String("question_text").
			NotEmpty().
			Comment("The question as shown to the learner"),
		field.String("option_a").NotEmpty(),
		field.String("option_b").NotEmpty(),
		field.String("option_c").NotEmpty(),
		field.String("option_d").NotEmpty(),
		field.String("option_e").NotEmpty(),
		field.String("answer").
			NotEmpty().
			Comment("Label of the correct option, A through E"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium or difficult"),
		field.String("shape").
			NotEmpty().
			Comment("Shape catalogue name"),
		field.String("kind").
			NotEmpty().
			Comment("area, perimeter, missing or symmetry"),
		field.String("image").
			NotEmpty().
			Comment("Figure path relative to the manifest directory"),
		field.Int("run_id").
			Optional().
			Comment("Run that imported this question, if known"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("difficulty"),
		index.Fields("shape"),
		index.Fields("kind"),
		index.Fields("run_id"),
	}
}
