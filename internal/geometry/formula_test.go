package geometry

import (
	"math"
	"testing"
)

func TestArea_KnownValues(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		dims  Dims
		want  float64
	}{
		{"square", ShapeSquare, Dims{Side: 5}, 25},
		{"rectangle", ShapeRectangle, Dims{Width: 4, Height: 6}, 24},
		{"equilateral", ShapeEquilateral, Dims{Side: 10}, 43.30127018922193},
		{"isosceles", ShapeIsosceles, Dims{Base: 6, Altitude: 4}, 12},
		{"scalene 3-4-5", ShapeScalene, Dims{A: 3, B: 4, C: 5}, 6},
		{"trapezium", ShapeTrapezium, Dims{Top: 4, Bottom: 8, Altitude: 3}, 18},
		{"parallelogram", ShapeParallelogram, Dims{Base: 5, Altitude: 4, Slant: 3}, 20},
		{"circle", ShapeCircle, Dims{Radius: 3}, 28.274333882308138},
		{"pentagon", ShapePentagon, Dims{Side: 4}, 27.527638409423474},
		{"hexagon", ShapeHexagon, Dims{Side: 2}, 10.392304845413264},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Area(tt.shape, tt.dims)
			if !ok {
				t.Fatalf("Area(%s) not defined", tt.shape)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Area(%s) = %v, want %v", tt.shape, got, tt.want)
			}
		})
	}
}

func TestPerimeter_KnownValues(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		dims  Dims
		want  float64
	}{
		{"square", ShapeSquare, Dims{Side: 5}, 20},
		{"rectangle", ShapeRectangle, Dims{Width: 4, Height: 6}, 20},
		{"equilateral", ShapeEquilateral, Dims{Side: 10}, 30},
		{"isosceles 6-4 legs are 3-4-5", ShapeIsosceles, Dims{Base: 6, Altitude: 4}, 16},
		{"scalene", ShapeScalene, Dims{A: 3, B: 4, C: 5}, 12},
		{"trapezium", ShapeTrapezium, Dims{Top: 4, Bottom: 8, Altitude: 3}, 19.211102550927978},
		{"parallelogram slant 3-4-5", ShapeParallelogram, Dims{Base: 5, Altitude: 4, Slant: 3}, 20},
		{"circle", ShapeCircle, Dims{Radius: 3}, 18.84955592153876},
		{"pentagon", ShapePentagon, Dims{Side: 4}, 20},
		{"hexagon", ShapeHexagon, Dims{Side: 2}, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Perimeter(tt.shape, tt.dims)
			if !ok {
				t.Fatalf("Perimeter(%s) not defined", tt.shape)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Perimeter(%s) = %v, want %v", tt.shape, got, tt.want)
			}
		})
	}
}

func TestArea_UnknownShape(t *testing.T) {
	if _, ok := Area(Shape("blob"), Dims{}); ok {
		t.Error("expected Area to reject an unknown shape")
	}
	if _, ok := Perimeter(Shape("blob"), Dims{}); ok {
		t.Error("expected Perimeter to reject an unknown shape")
	}
}

func TestSymmetryLines(t *testing.T) {
	want := map[Shape]int{
		ShapeSquare:        4,
		ShapeRectangle:     2,
		ShapeEquilateral:   3,
		ShapeIsosceles:     1,
		ShapeScalene:       0,
		ShapeTrapezium:     1,
		ShapeParallelogram: 0,
		ShapePentagon:      5,
		ShapeHexagon:       6,
	}
	for shape, count := range want {
		got, ok := SymmetryLines(shape)
		if !ok {
			t.Errorf("SymmetryLines(%s) not defined", shape)
			continue
		}
		if got != count {
			t.Errorf("SymmetryLines(%s) = %d, want %d", shape, got, count)
		}
	}
	if _, ok := SymmetryLines(ShapeCircle); ok {
		t.Error("circle symmetry must be undefined")
	}
}

func TestSymmetryPool_HoldsFiveOptions(t *testing.T) {
	for _, shape := range AllShapes() {
		if shape == ShapeCircle {
			if SymmetryPool(shape) != nil {
				t.Errorf("circle must have no symmetry pool")
			}
			continue
		}
		pool := SymmetryPool(shape)
		correct, _ := SymmetryLines(shape)

		seen := make(map[int]bool, len(pool))
		hasCorrect := false
		for _, v := range pool {
			if seen[v] {
				t.Errorf("%s pool has duplicate value %d", shape, v)
			}
			seen[v] = true
			if v == correct {
				hasCorrect = true
			}
		}
		if !hasCorrect {
			t.Errorf("%s pool %v missing its own symmetry count %d", shape, pool, correct)
		}
		if len(seen) < 5 {
			t.Errorf("%s pool %v holds %d values, need at least 5 to fill options", shape, pool, len(seen))
		}
	}
}

func TestMissingFor_CoversCatalogue(t *testing.T) {
	for _, shape := range AllShapes() {
		spec, ok := MissingFor(shape)
		if !ok {
			t.Errorf("MissingFor(%s) not defined", shape)
			continue
		}
		if spec.Hidden == "" {
			t.Errorf("MissingFor(%s) has empty hidden dimension name", shape)
		}
		if spec.Known != KindArea && spec.Known != KindPerimeter {
			t.Errorf("MissingFor(%s) states %q, want area or perimeter", shape, spec.Known)
		}
		if _, ok := HiddenValue(shape, Dims{}); !ok {
			t.Errorf("HiddenValue(%s) not defined", shape)
		}
	}
}

func TestHiddenValue(t *testing.T) {
	tests := []struct {
		shape Shape
		dims  Dims
		want  int
	}{
		{ShapeSquare, Dims{Side: 7}, 7},
		{ShapeRectangle, Dims{Width: 9, Height: 4}, 9},
		{ShapeIsosceles, Dims{Base: 6, Altitude: 5}, 5},
		{ShapeScalene, Dims{A: 5, B: 6, C: 7}, 5},
		{ShapeTrapezium, Dims{Top: 3, Bottom: 8, Altitude: 4}, 4},
		{ShapeParallelogram, Dims{Base: 8, Altitude: 3, Slant: 2}, 8},
		{ShapeCircle, Dims{Radius: 6}, 6},
		{ShapePentagon, Dims{Side: 3}, 3},
	}
	for _, tt := range tests {
		got, ok := HiddenValue(tt.shape, tt.dims)
		if !ok {
			t.Fatalf("HiddenValue(%s) not defined", tt.shape)
		}
		if got != tt.want {
			t.Errorf("HiddenValue(%s) = %d, want %d", tt.shape, got, tt.want)
		}
	}
}
