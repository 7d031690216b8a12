package quizgen

import (
	"errors"
	"math/rand"
	"reflect"
	"strconv"
	"testing"

	"github.com/abhisek/geometriq/internal/geometry"
)

func TestEngine_GenerateAllShapeKindCombinations(t *testing.T) {
	eng := New(DefaultConfig())
	for _, shape := range geometry.AllShapes() {
		for _, kind := range geometry.KindsFor(shape) {
			for _, tier := range geometry.AllTiers() {
				t.Run(string(shape)+"/"+string(kind)+"/"+string(tier), func(t *testing.T) {
					rng := rand.New(rand.NewSource(31))
					q, err := eng.Generate(rng, GenerateInput{Shape: shape, Tier: tier, Kind: kind})
					if err != nil {
						t.Fatalf("Generate: %v", err)
					}
					if q.Shape != shape || q.Tier != tier || q.Kind != kind {
						t.Errorf("echoed input mismatch: %s/%s/%s", q.Shape, q.Tier, q.Kind)
					}
					if q.Text == "" {
						t.Error("empty question text")
					}
					if len(q.Options) != 5 {
						t.Errorf("got %d options", len(q.Options))
					}
					if q.Figure == nil {
						t.Error("no figure emitted")
					}
					value, ok := q.OptionValue(q.CorrectLabel)
					if !ok || value != strconv.Itoa(q.CorrectValue) {
						t.Errorf("correct label %q resolves to %q, want %d", q.CorrectLabel, value, q.CorrectValue)
					}
				})
			}
		}
	}
}

func TestEngine_GenerateIsReproducible(t *testing.T) {
	eng := New(DefaultConfig())
	in := GenerateInput{Shape: geometry.ShapeTrapezium, Tier: geometry.TierMedium, Kind: geometry.KindArea}

	first, err := eng.Generate(rand.New(rand.NewSource(1234)), in)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	second, err := eng.Generate(rand.New(rand.NewSource(1234)), in)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed produced different questions:\n%+v\n%+v", first, second)
	}

	third, err := eng.Generate(rand.New(rand.NewSource(1235)), in)
	if err != nil {
		t.Fatalf("third Generate: %v", err)
	}
	if reflect.DeepEqual(first.Dims, third.Dims) && first.CorrectLabel == third.CorrectLabel {
		t.Log("adjacent seeds coincided; suspicious but not impossible")
	}
}

func TestEngine_GenerateRejectsBadInput(t *testing.T) {
	eng := New(DefaultConfig())
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name  string
		in    GenerateInput
		field string
	}{
		{
			name:  "unknown shape",
			in:    GenerateInput{Shape: "rhombus", Tier: geometry.TierEasy, Kind: geometry.KindArea},
			field: "shape",
		},
		{
			name:  "unknown tier",
			in:    GenerateInput{Shape: geometry.ShapeSquare, Tier: "nightmare", Kind: geometry.KindArea},
			field: "tier",
		},
		{
			name:  "unknown kind",
			in:    GenerateInput{Shape: geometry.ShapeSquare, Tier: geometry.TierEasy, Kind: "volume"},
			field: "kind",
		},
		{
			name:  "circle symmetry",
			in:    GenerateInput{Shape: geometry.ShapeCircle, Tier: geometry.TierEasy, Kind: geometry.KindSymmetry},
			field: "kind",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.Generate(rng, tt.in)
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigurationError, got %v", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}

	_, err := eng.Generate(rng, GenerateInput{
		Shape: geometry.ShapeCircle, Tier: geometry.TierEasy, Kind: geometry.KindSymmetry,
	})
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) && cfgErr.Hint == "" {
		t.Error("circle symmetry rejection should explain itself")
	}
}

// rejectAllValidator fails every question it sees.
type rejectAllValidator struct{ calls int }

func (v *rejectAllValidator) Name() string { return "reject-all" }

func (v *rejectAllValidator) Validate(q *Question) *ValidationError {
	v.calls++
	return &ValidationError{Validator: v.Name(), Message: "always fails", Retryable: false}
}

func TestEngine_RunsInjectedValidators(t *testing.T) {
	reject := &rejectAllValidator{}
	cfg := DefaultConfig()
	cfg.Validators = []Validator{reject}
	eng := New(cfg)

	_, err := eng.Generate(rand.New(rand.NewSource(8)), GenerateInput{
		Shape: geometry.ShapeSquare, Tier: geometry.TierEasy, Kind: geometry.KindArea,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Validator != "reject-all" {
		t.Errorf("validator = %q", verr.Validator)
	}
	if reject.calls != 1 {
		t.Errorf("validator ran %d times, want 1", reject.calls)
	}
}

func TestEngine_ZeroDimensionBudgetFails(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDimensionAttempts = 0
	eng := New(cfg)

	_, err := eng.Generate(rand.New(rand.NewSource(8)), GenerateInput{
		Shape: geometry.ShapeSquare, Tier: geometry.TierEasy, Kind: geometry.KindArea,
	})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %v", err)
	}
}

func TestEngine_EasySquareAreaProperties(t *testing.T) {
	eng := New(DefaultConfig())
	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < 100; i++ {
		q, err := eng.Generate(rng, GenerateInput{
			Shape: geometry.ShapeSquare, Tier: geometry.TierEasy, Kind: geometry.KindArea,
		})
		if err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
		if q.Dims.Side < 1 || q.Dims.Side > 10 {
			t.Errorf("side %d outside easy range", q.Dims.Side)
		}
		if q.CorrectValue != q.Dims.Side*q.Dims.Side {
			t.Errorf("correct %d for side %d", q.CorrectValue, q.Dims.Side)
		}
		seen := map[string]bool{}
		for _, opt := range q.Options {
			if seen[opt.Value] {
				t.Errorf("duplicate option %q", opt.Value)
			}
			seen[opt.Value] = true
			n, err := strconv.Atoi(opt.Value)
			if err != nil || n <= 0 {
				t.Errorf("option %q not a positive integer", opt.Value)
			}
		}
	}
}

// Unit-sided equilateral areas round to zero, so the engine must resample
// until a positive answer lands while staying inside the tier range.
func TestEngine_EquilateralAreaAlwaysPositive(t *testing.T) {
	eng := New(DefaultConfig())
	rng := rand.New(rand.NewSource(77))
	for i := 0; i < 200; i++ {
		q, err := eng.Generate(rng, GenerateInput{
			Shape: geometry.ShapeEquilateral, Tier: geometry.TierEasy, Kind: geometry.KindArea,
		})
		if err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
		if q.CorrectValue < 1 {
			t.Fatalf("iteration %d: answer %d not positive", i, q.CorrectValue)
		}
		if q.Dims.Side < 1 || q.Dims.Side > 10 {
			t.Errorf("side %d outside easy range", q.Dims.Side)
		}
	}
}

func TestEngine_MissingKindHidesOneDimension(t *testing.T) {
	eng := New(DefaultConfig())
	rng := rand.New(rand.NewSource(55))
	q, err := eng.Generate(rng, GenerateInput{
		Shape: geometry.ShapeRectangle, Tier: geometry.TierMedium, Kind: geometry.KindMissing,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if q.CorrectValue != q.Dims.Width {
		t.Errorf("hidden answer %d, want width %d", q.CorrectValue, q.Dims.Width)
	}
	placeholders := 0
	for _, dim := range q.Figure.Dimensions {
		if dim.Label == "?" {
			placeholders++
		}
	}
	if placeholders != 1 {
		t.Errorf("figure shows %d placeholders, want exactly 1", placeholders)
	}
}

func TestRandomInput_NeverPairsCircleWithSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	for i := 0; i < 500; i++ {
		in := RandomInput(rng)
		if !kindAllowed(in.Shape, in.Kind) {
			t.Fatalf("draw %d: %s does not support %s", i, in.Shape, in.Kind)
		}
		if _, _, ok := geometry.Range(in.Tier); !ok {
			t.Fatalf("draw %d: bad tier %q", i, in.Tier)
		}
	}
}
