package quizgen

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/abhisek/geometriq/internal/geometry"
)

func inRange(t *testing.T, name string, v, low, high int) {
	t.Helper()
	if v < low || v > high {
		t.Errorf("%s = %d outside [%d,%d]", name, v, low, high)
	}
}

func TestSampleDimensions_WithinTierRange(t *testing.T) {
	for _, tier := range geometry.AllTiers() {
		low, high, _ := geometry.Range(tier)
		rng := rand.New(rand.NewSource(7))
		for _, shape := range geometry.AllShapes() {
			for i := 0; i < 200; i++ {
				d, err := SampleDimensions(shape, tier, rng, 100)
				if err != nil {
					t.Fatalf("SampleDimensions(%s, %s): %v", shape, tier, err)
				}
				switch shape {
				case geometry.ShapeSquare, geometry.ShapeEquilateral,
					geometry.ShapePentagon, geometry.ShapeHexagon:
					inRange(t, "side", d.Side, low, high)
				case geometry.ShapeRectangle:
					inRange(t, "width", d.Width, low, high)
					inRange(t, "height", d.Height, low, high)
					if d.Width == d.Height {
						t.Errorf("rectangle sampled a square: %dx%d", d.Width, d.Height)
					}
				case geometry.ShapeIsosceles:
					inRange(t, "base", d.Base, low, high)
					inRange(t, "altitude", d.Altitude, low, high)
				case geometry.ShapeScalene:
					inRange(t, "a", d.A, low, high)
					inRange(t, "b", d.B, low, high)
					inRange(t, "c", d.C, low, high)
				case geometry.ShapeTrapezium:
					inRange(t, "top", d.Top, low, high)
					inRange(t, "bottom", d.Bottom, low, high)
					inRange(t, "altitude", d.Altitude, low, high)
					if d.Bottom < d.Top+2 {
						t.Errorf("trapezium bottom %d not longer than top %d", d.Bottom, d.Top)
					}
				case geometry.ShapeParallelogram:
					inRange(t, "base", d.Base, low, high)
					inRange(t, "altitude", d.Altitude, low, high)
					if d.Slant < 1 || d.Slant > 10 {
						t.Errorf("parallelogram slant %d outside [1,10]", d.Slant)
					}
				case geometry.ShapeCircle:
					inRange(t, "radius", d.Radius, low, high)
				}
			}
		}
	}
}

func TestSampleDimensions_ScaleneIsAlwaysATriangle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		d, err := SampleDimensions(geometry.ShapeScalene, geometry.TierEasy, rng, 100)
		if err != nil {
			t.Fatalf("scalene sampling failed: %v", err)
		}
		if !validTriangle(d.A, d.B, d.C) {
			t.Fatalf("degenerate triple (%d,%d,%d)", d.A, d.B, d.C)
		}
		if d.A == d.B || d.B == d.C || d.A == d.C {
			t.Fatalf("non-scalene triple (%d,%d,%d)", d.A, d.B, d.C)
		}
	}
}

func TestSampleDimensions_ScaleneExhaustsBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := SampleDimensions(geometry.ShapeScalene, geometry.TierEasy, rng, 0)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %v", err)
	}
	if genErr.Stage != "dimensions" {
		t.Errorf("unexpected stage %q", genErr.Stage)
	}
}

func TestSampleDimensions_UnknownTier(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := SampleDimensions(geometry.ShapeSquare, geometry.Tier("brutal"), rng, 100)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %v", err)
	}
	if cfgErr.Field != "tier" {
		t.Errorf("unexpected field %q", cfgErr.Field)
	}
}

func TestSampleDimensions_UnknownShape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := SampleDimensions(geometry.Shape("blob"), geometry.TierEasy, rng, 100)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %v", err)
	}
}
