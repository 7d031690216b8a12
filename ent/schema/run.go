package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run records one generation or import run for provenance.
type Run struct {
	ent.Schema
}

func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("uid").
			Unique().
			Immutable().
			Comment("External identity of the run, stable across exports"),
		field.Int64("seed").
			Comment("Base seed the run used"),
		field.Int("total").
			Comment("Questions the run produced"),
		field.Int("skipped").
			Comment("Questions abandoned after the retry budget"),
		field.String("manifest_path").
			NotEmpty().
			Comment("Manifest the run wrote or imported"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
