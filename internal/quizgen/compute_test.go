package quizgen

import (
	"errors"
	"testing"

	"github.com/abhisek/geometriq/internal/geometry"
)

func TestComputeAnswer(t *testing.T) {
	tests := []struct {
		name  string
		shape geometry.Shape
		dims  geometry.Dims
		kind  geometry.Kind
		want  int
	}{
		{"square area", geometry.ShapeSquare, geometry.Dims{Side: 5}, geometry.KindArea, 25},
		{"square perimeter", geometry.ShapeSquare, geometry.Dims{Side: 5}, geometry.KindPerimeter, 20},
		{"rectangle area", geometry.ShapeRectangle, geometry.Dims{Width: 7, Height: 3}, geometry.KindArea, 21},
		{"equilateral area rounds", geometry.ShapeEquilateral, geometry.Dims{Side: 10}, geometry.KindArea, 43},
		{"scalene area heron", geometry.ShapeScalene, geometry.Dims{A: 3, B: 4, C: 5}, geometry.KindArea, 6},
		{"scalene perimeter", geometry.ShapeScalene, geometry.Dims{A: 3, B: 4, C: 5}, geometry.KindPerimeter, 12},
		{"trapezium area", geometry.ShapeTrapezium, geometry.Dims{Top: 3, Bottom: 7, Altitude: 4}, geometry.KindArea, 20},
		{"parallelogram area", geometry.ShapeParallelogram, geometry.Dims{Base: 6, Altitude: 4, Slant: 2}, geometry.KindArea, 24},
		{"circle area rounds", geometry.ShapeCircle, geometry.Dims{Radius: 3}, geometry.KindArea, 28},
		{"circle circumference rounds", geometry.ShapeCircle, geometry.Dims{Radius: 3}, geometry.KindPerimeter, 19},
		{"hexagon perimeter", geometry.ShapeHexagon, geometry.Dims{Side: 4}, geometry.KindPerimeter, 24},
		{"square symmetry", geometry.ShapeSquare, geometry.Dims{Side: 5}, geometry.KindSymmetry, 4},
		{"scalene symmetry", geometry.ShapeScalene, geometry.Dims{A: 4, B: 5, C: 6}, geometry.KindSymmetry, 0},
		{"pentagon symmetry", geometry.ShapePentagon, geometry.Dims{Side: 4}, geometry.KindSymmetry, 5},
		{"square missing is side", geometry.ShapeSquare, geometry.Dims{Side: 9}, geometry.KindMissing, 9},
		{"rectangle missing is width", geometry.ShapeRectangle, geometry.Dims{Width: 8, Height: 3}, geometry.KindMissing, 8},
		{"circle missing is radius", geometry.ShapeCircle, geometry.Dims{Radius: 6}, geometry.KindMissing, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeAnswer(tt.shape, tt.dims, tt.kind)
			if err != nil {
				t.Fatalf("ComputeAnswer: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeAnswer_CircleSymmetryRejected(t *testing.T) {
	_, err := ComputeAnswer(geometry.ShapeCircle, geometry.Dims{Radius: 4}, geometry.KindSymmetry)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %v", err)
	}
	if cfgErr.Field != "kind" {
		t.Errorf("unexpected field %q", cfgErr.Field)
	}
}

func TestComputeAnswer_UnknownKind(t *testing.T) {
	_, err := ComputeAnswer(geometry.ShapeSquare, geometry.Dims{Side: 2}, geometry.Kind("volume"))
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %v", err)
	}
}

// A unit equilateral triangle has area 0.43 which rounds to zero. The
// engine resamples those; the raw computation reports them faithfully.
func TestComputeAnswer_UnitEquilateralAreaRoundsToZero(t *testing.T) {
	got, err := ComputeAnswer(geometry.ShapeEquilateral, geometry.Dims{Side: 1}, geometry.KindArea)
	if err != nil {
		t.Fatalf("ComputeAnswer: %v", err)
	}
	if got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestComputeAnswer_NeverNegativeAcrossRanges(t *testing.T) {
	for _, tier := range geometry.AllTiers() {
		low, high, _ := geometry.Range(tier)
		for _, shape := range geometry.AllShapes() {
			for _, kind := range geometry.KindsFor(shape) {
				if kind == geometry.KindSymmetry {
					continue
				}
				for _, v := range []int{low, high} {
					got, err := ComputeAnswer(shape, fixedDims(shape, v), kind)
					if err != nil {
						t.Fatalf("%s %s at %d: %v", shape, kind, v, err)
					}
					if got < 0 {
						t.Errorf("%s %s at %d: answer %d negative", shape, kind, v, got)
					}
				}
			}
		}
	}
}

// fixedDims builds deterministic dimensions with every field at v,
// adjusted where a shape forbids equal sides.
func fixedDims(s geometry.Shape, v int) geometry.Dims {
	switch s {
	case geometry.ShapeRectangle:
		return geometry.Dims{Width: v, Height: max(1, v-1)}
	case geometry.ShapeIsosceles:
		return geometry.Dims{Base: v, Altitude: v}
	case geometry.ShapeScalene:
		if v < 4 {
			return geometry.Dims{A: 3, B: 4, C: 5}
		}
		return geometry.Dims{A: v, B: v - 1, C: v - 2}
	case geometry.ShapeTrapezium:
		return geometry.Dims{Top: max(1, v-2), Bottom: v + 2, Altitude: v}
	case geometry.ShapeParallelogram:
		return geometry.Dims{Base: v, Altitude: v, Slant: 2}
	case geometry.ShapeCircle:
		return geometry.Dims{Radius: v}
	default:
		return geometry.Dims{Side: v}
	}
}
