// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/geometriq/ent/attempt"
	"github.com/abhisek/geometriq/ent/question"
	"github.com/abhisek/geometriq/ent/run"
	"github.com/abhisek/geometriq/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescChosen is the schema descriptor for chosen field.
	attemptDescChosen := attemptFields[1].Descriptor()
	// attempt.ChosenValidator is a validator for the "chosen" field. It is called by the builders before save.
	attempt.ChosenValidator = attemptDescChosen.Validators[0].(func(string) error)
	// attemptDescDifficulty is the schema descriptor for difficulty field.
	attemptDescDifficulty := attemptFields[4].Descriptor()
	// attempt.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	attempt.DifficultyValidator = attemptDescDifficulty.Validators[0].(func(string) error)
	// attemptDescShape is the schema descriptor for shape field.
	attemptDescShape := attemptFields[5].Descriptor()
	// attempt.ShapeValidator is a validator for the "shape" field. It is called by the builders before save.
	attempt.ShapeValidator = attemptDescShape.Validators[0].(func(string) error)
	// attemptDescKind is the schema descriptor for kind field.
	attemptDescKind := attemptFields[6].Descriptor()
	// attempt.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	attempt.KindValidator = attemptDescKind.Validators[0].(func(string) error)
	// attemptDescAnsweredAt is the schema descriptor for answered_at field.
	attemptDescAnsweredAt := attemptFields[7].Descriptor()
	// attempt.DefaultAnsweredAt holds the default value on creation for the answered_at field.
	attempt.DefaultAnsweredAt = attemptDescAnsweredAt.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQuestionText is the schema descriptor for question_text field.
	questionDescQuestionText := questionFields[1].Descriptor()
	// question.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	question.QuestionTextValidator = questionDescQuestionText.Validators[0].(func(string) error)
	// questionDescOptionA is the schema descriptor for option_a field.
	questionDescOptionA := questionFields[2].Descriptor()
	// question.OptionAValidator is a validator for the "option_a" field. It is called by the builders before save.
	question.OptionAValidator = questionDescOptionA.Validators[0].(func(string) error)
	// questionDescOptionB is the schema descriptor for option_b field.
	questionDescOptionB := questionFields[3].Descriptor()
	// question.OptionBValidator is a validator for the "option_b" field. It is called by the builders before save.
	question.OptionBValidator = questionDescOptionB.Validators[0].(func(string) error)
	// questionDescOptionC is the schema descriptor for option_c field.
	questionDescOptionC := questionFields[4].Descriptor()
	// question.OptionCValidator is a validator for the "option_c" field. It is called by the builders before save.
	question.OptionCValidator = questionDescOptionC.Validators[0].(func(string) error)
	// questionDescOptionD is the schema descriptor for option_d field.
	questionDescOptionD := questionFields[5].Descriptor()
	// question.OptionDValidator is a validator for the "option_d" field. It is called by the builders before save.
	question.OptionDValidator = questionDescOptionD.Validators[0].(func(string) error)
	// questionDescOptionE is the schema descriptor for option_e field.
	questionDescOptionE := questionFields[6].Descriptor()
	// question.OptionEValidator is a validator for the "option_e" field. It is called by the builders before save.
	question.OptionEValidator = questionDescOptionE.Validators[0].(func(string) error)
	// questionDescAnswer is the schema descriptor for answer field.
	questionDescAnswer := questionFields[7].Descriptor()
	// question.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	question.AnswerValidator = questionDescAnswer.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[8].Descriptor()
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = questionDescDifficulty.Validators[0].(func(string) error)
	// questionDescShape is the schema descriptor for shape field.
	questionDescShape := questionFields[9].Descriptor()
	// question.ShapeValidator is a validator for the "shape" field. It is called by the builders before save.
	question.ShapeValidator = questionDescShape.Validators[0].(func(string) error)
	// questionDescKind is the schema descriptor for kind field.
	questionDescKind := questionFields[10].Descriptor()
	// question.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	question.KindValidator = questionDescKind.Validators[0].(func(string) error)
	// questionDescImage is the schema descriptor for image field.
	questionDescImage := questionFields[11].Descriptor()
	// question.ImageValidator is a validator for the "image" field. It is called by the builders before save.
	question.ImageValidator = questionDescImage.Validators[0].(func(string) error)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[13].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescManifestPath is the schema descriptor for manifest_path field.
	runDescManifestPath := runFields[4].Descriptor()
	// run.ManifestPathValidator is a validator for the "manifest_path" field. It is called by the builders before save.
	run.ManifestPathValidator = runDescManifestPath.Validators[0].(func(string) error)
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[5].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
}
