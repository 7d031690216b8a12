package manifest

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/geometriq/internal/geometry"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// schemaDefinition describes a manifest: an array of complete records with
// exactly the options A through E.
func schemaDefinition() map[string]any {
	labels := []any{"A", "B", "C", "D", "E"}
	optionProps := make(map[string]any, len(labels))
	for _, l := range labels {
		optionProps[l.(string)] = map[string]any{"type": "string", "minLength": 1}
	}
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string", "minLength": 1},
				"options": map[string]any{
					"type":                 "object",
					"properties":           optionProps,
					"required":             labels,
					"additionalProperties": false,
				},
				"answer":     map[string]any{"type": "string", "enum": labels},
				"difficulty": map[string]any{"type": "string", "enum": stringEnum(tierNames())},
				"image":      map[string]any{"type": "string", "minLength": 1},
				"shape":      map[string]any{"type": "string", "enum": stringEnum(shapeNames())},
				"kind":       map[string]any{"type": "string", "enum": stringEnum(kindNames())},
			},
			"required": []any{
				"question", "options", "answer", "difficulty", "image", "shape", "kind",
			},
			"additionalProperties": false,
		},
	}
}

func tierNames() []string {
	tiers := geometry.AllTiers()
	out := make([]string, len(tiers))
	for i, t := range tiers {
		out[i] = string(t)
	}
	return out
}

func shapeNames() []string {
	shapes := geometry.AllShapes()
	out := make([]string, len(shapes))
	for i, s := range shapes {
		out[i] = string(s)
	}
	return out
}

func kindNames() []string {
	kinds := geometry.AllKinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}

func stringEnum(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a parsed JSON value, so round-trip the
		// definition through encoding/json.
		raw, err := json.Marshal(schemaDefinition())
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://manifest.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// Validate checks records against the manifest schema, then applies the
// semantic rules the schema cannot express: the answer label must resolve,
// option values must be pairwise distinct, and the kind must be one the
// shape supports.
func Validate(records []Record) error {
	schema, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("manifest: compile schema: %w", err)
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("manifest: marshal records: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("manifest: reparse records: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("manifest: schema validation failed: %w", err)
	}

	images := make(map[string]int, len(records))
	for i, r := range records {
		if _, ok := r.CorrectValue(); !ok {
			return fmt.Errorf("manifest: record %d: answer %q has no option", i, r.Answer)
		}
		seen := make(map[string]bool, len(r.Options))
		for label, v := range r.Options {
			if seen[v] {
				return fmt.Errorf("manifest: record %d: duplicate option value %q", i, v)
			}
			seen[v] = true
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("manifest: record %d: option %s value %q is not an integer", i, label, v)
			}
			if n < 0 || (n == 0 && r.Kind != geometry.KindSymmetry) {
				return fmt.Errorf("manifest: record %d: option %s value %d out of range for %s", i, label, n, r.Kind)
			}
		}
		if !kindSupported(r.Shape, r.Kind) {
			return fmt.Errorf("manifest: record %d: %s does not support %s questions", i, r.Shape, r.Kind)
		}
		if prev, dup := images[r.Image]; dup {
			return fmt.Errorf("manifest: record %d: image %q already used by record %d", i, r.Image, prev)
		}
		images[r.Image] = i
	}
	return nil
}

func kindSupported(s geometry.Shape, k geometry.Kind) bool {
	for _, allowed := range geometry.KindsFor(s) {
		if allowed == k {
			return true
		}
	}
	return false
}
