// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "chosen", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "shape", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "answered_at", Type: field.TypeTime},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_question_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1]},
			},
			{
				Name:    "attempt_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[3]},
			},
			{
				Name:    "attempt_answered_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[8]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "fingerprint", Type: field.TypeString, Unique: true},
		{Name: "question_text", Type: field.TypeString},
		{Name: "option_a", Type: field.TypeString},
		{Name: "option_b", Type: field.TypeString},
		{Name: "option_c", Type: field.TypeString},
		{Name: "option_d", Type: field.TypeString},
		{Name: "option_e", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "shape", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "image", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_difficulty",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[9]},
			},
			{
				Name:    "question_shape",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[10]},
			},
			{
				Name:    "question_kind",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[11]},
			},
			{
				Name:    "question_run_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[13]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uid", Type: field.TypeString, Unique: true},
		{Name: "seed", Type: field.TypeInt64},
		{Name: "total", Type: field.TypeInt},
		{Name: "skipped", Type: field.TypeInt},
		{Name: "manifest_path", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "run_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		QuestionsTable,
		RunsTable,
	}
)

func init() {
}
