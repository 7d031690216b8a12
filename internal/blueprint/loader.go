package blueprint

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/geometriq/internal/geometry"
	"github.com/abhisek/geometriq/internal/quizgen"
)

// Loader parses and validates blueprint files.
type Loader struct {
	validate *validator.Validate
}

// NewLoader returns a loader with struct validation wired up.
func NewLoader() *Loader {
	return &Loader{validate: validator.New()}
}

// LoadFile reads, parses and validates one blueprint.
func (l *Loader) LoadFile(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("blueprint: read %s: %w", path, err)
	}
	bp, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("blueprint: %s: %w", path, err)
	}
	return bp, nil
}

// Parse decodes YAML with unknown fields rejected, then applies struct tag
// validation and the cross-field rules.
func (l *Loader) Parse(data []byte) (*Blueprint, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var bp Blueprint
	if err := dec.Decode(&bp); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := l.validate.Struct(&bp); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if err := bp.check(); err != nil {
		return nil, err
	}
	if bp.OutDir == "" {
		bp.OutDir = "."
	}
	return &bp, nil
}

// check applies the rules struct tags cannot express.
func (b *Blueprint) check() error {
	if !semver.IsValid(b.Schema) {
		return &quizgen.ConfigurationError{
			Field: "schema",
			Value: b.Schema,
			Hint:  "use a version like " + SchemaVersion,
		}
	}
	if semver.Major(b.Schema) != SchemaVersion {
		return &quizgen.ConfigurationError{
			Field: "schema",
			Value: b.Schema,
			Hint:  "this build understands major " + SchemaVersion,
		}
	}

	mixTotal := 0
	for i, m := range b.Mix {
		mixTotal += m.Count
		if m.Shape != "" {
			if _, err := geometry.ParseShape(m.Shape); err != nil {
				return &quizgen.ConfigurationError{Field: fmt.Sprintf("mix[%d].shape", i), Value: m.Shape}
			}
		}
		if m.Tier != "" {
			if _, err := geometry.ParseTier(m.Tier); err != nil {
				return &quizgen.ConfigurationError{Field: fmt.Sprintf("mix[%d].tier", i), Value: m.Tier}
			}
		}
		if m.Kind != "" {
			if _, err := geometry.ParseKind(m.Kind); err != nil {
				return &quizgen.ConfigurationError{Field: fmt.Sprintf("mix[%d].kind", i), Value: m.Kind}
			}
		}
		if m.Shape != "" && m.Kind != "" && !supports(geometry.Shape(m.Shape), geometry.Kind(m.Kind)) {
			return &quizgen.ConfigurationError{
				Field: fmt.Sprintf("mix[%d].kind", i),
				Value: m.Kind,
				Hint:  fmt.Sprintf("%s questions are not defined for the %s", m.Kind, m.Shape),
			}
		}
	}

	if b.Count == 0 && mixTotal == 0 {
		return &quizgen.ConfigurationError{
			Field: "count",
			Value: "0",
			Hint:  "give a count or a mix",
		}
	}
	if b.Count > 0 && b.Count < mixTotal {
		return &quizgen.ConfigurationError{
			Field: "count",
			Value: fmt.Sprintf("%d", b.Count),
			Hint:  fmt.Sprintf("mix already pins %d questions", mixTotal),
		}
	}
	return nil
}

func supports(s geometry.Shape, k geometry.Kind) bool {
	for _, allowed := range geometry.KindsFor(s) {
		if allowed == k {
			return true
		}
	}
	return false
}
