package blueprint

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/geometriq/internal/geometry"
	"github.com/abhisek/geometriq/internal/quizgen"
)

const fullDoc = `
schema: v1
count: 25
seed: 42
out_dir: out
concurrency: 8
mix:
  - shape: square
    tier: easy
    kind: area
    count: 10
  - tier: difficult
    count: 10
`

func TestParse_FullDocument(t *testing.T) {
	bp, err := NewLoader().Parse([]byte(fullDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if bp.Schema != "v1" || bp.Count != 25 || bp.OutDir != "out" || bp.Concurrency != 8 {
		t.Errorf("unexpected blueprint %+v", bp)
	}
	if bp.Seed == nil || *bp.Seed != 42 {
		t.Errorf("seed = %v, want 42", bp.Seed)
	}
	if bp.Total() != 25 {
		t.Errorf("Total = %d, want 25", bp.Total())
	}
}

func TestParse_Defaults(t *testing.T) {
	bp, err := NewLoader().Parse([]byte("schema: v1\ncount: 3\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if bp.OutDir != "." {
		t.Errorf("OutDir = %q, want .", bp.OutDir)
	}
	if bp.Seed != nil {
		t.Errorf("Seed should stay nil when omitted")
	}
	if bp.Concurrency != 0 {
		t.Errorf("Concurrency = %d, want 0 (runner decides)", bp.Concurrency)
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := NewLoader().Parse([]byte("schema: v1\ncount: 3\nworkers: 2\n"))
	if err == nil || !strings.Contains(err.Error(), "workers") {
		t.Errorf("unknown field should be rejected: %v", err)
	}
}

func TestParse_SchemaGate(t *testing.T) {
	tests := []struct {
		name   string
		schema string
	}{
		{"missing", ""},
		{"not semver", "one"},
		{"no v prefix", "1.0.0"},
		{"newer major", "v2"},
		{"newer major full", "v2.3.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "count: 3\n"
			if tt.schema != "" {
				doc = "schema: " + tt.schema + "\n" + doc
			}
			if _, err := NewLoader().Parse([]byte(doc)); err == nil {
				t.Fatalf("schema %q should be rejected", tt.schema)
			}
		})
	}

	// Minor and patch versions of the same major stay accepted.
	if _, err := NewLoader().Parse([]byte("schema: v1.2.3\ncount: 3\n")); err != nil {
		t.Errorf("v1.2.3 should parse: %v", err)
	}
}

func TestParse_CrossFieldRules(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name:  "no count and no mix",
			doc:   "schema: v1\n",
			field: "count",
		},
		{
			name:  "count undercuts mix",
			doc:   "schema: v1\ncount: 3\nmix:\n  - shape: square\n    count: 5\n",
			field: "count",
		},
		{
			name:  "unknown mix shape",
			doc:   "schema: v1\nmix:\n  - shape: rhombus\n    count: 2\n",
			field: "mix[0].shape",
		},
		{
			name:  "unknown mix tier",
			doc:   "schema: v1\nmix:\n  - tier: brutal\n    count: 2\n",
			field: "mix[0].tier",
		},
		{
			name:  "unknown mix kind",
			doc:   "schema: v1\nmix:\n  - kind: volume\n    count: 2\n",
			field: "mix[0].kind",
		},
		{
			name:  "circle symmetry pin",
			doc:   "schema: v1\nmix:\n  - shape: circle\n    kind: symmetry\n    count: 2\n",
			field: "mix[0].kind",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().Parse([]byte(tt.doc))
			var cfgErr *quizgen.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigurationError, got %v", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestExpand(t *testing.T) {
	bp, err := NewLoader().Parse([]byte(fullDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	items := bp.Expand()
	if len(items) != 25 {
		t.Fatalf("expanded %d items, want 25", len(items))
	}
	for i, item := range items {
		if item.Index != i+1 {
			t.Fatalf("item %d has index %d", i, item.Index)
		}
	}
	// First ten pinned fully, next ten pinned to the difficult tier,
	// last five unpinned.
	if items[0].Shape != geometry.ShapeSquare || items[9].Kind != geometry.KindArea {
		t.Errorf("first mix entry not applied: %+v", items[0])
	}
	if items[10].Tier != geometry.TierDifficult || items[10].Shape != "" {
		t.Errorf("second mix entry not applied: %+v", items[10])
	}
	if items[24].Shape != "" || items[24].Tier != "" || items[24].Kind != "" {
		t.Errorf("remainder should be unpinned: %+v", items[24])
	}
}

func TestExpand_MixOnly(t *testing.T) {
	bp, err := NewLoader().Parse([]byte("schema: v1\nmix:\n  - kind: symmetry\n    count: 4\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	items := bp.Expand()
	if len(items) != 4 {
		t.Fatalf("expanded %d items, want 4", len(items))
	}
	for _, item := range items {
		if item.Kind != geometry.KindSymmetry {
			t.Errorf("kind pin lost: %+v", item)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte(fullDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	bp, err := NewLoader().LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if bp.Count != 25 {
		t.Errorf("Count = %d", bp.Count)
	}

	if _, err := NewLoader().LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file should error")
	}
}
