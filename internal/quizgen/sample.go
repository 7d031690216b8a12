package quizgen

import (
	"math/rand"

	"github.com/abhisek/geometriq/internal/geometry"
)

// SampleDimensions draws integer dimensions for a shape uniformly from the
// tier's range, honoring the shape's constraints. Every returned dimension
// lies within [low, high] for the tier.
func SampleDimensions(s geometry.Shape, tier geometry.Tier, rng *rand.Rand, maxAttempts int) (geometry.Dims, error) {
	low, high, ok := geometry.Range(tier)
	if !ok {
		return geometry.Dims{}, &ConfigurationError{Field: "tier", Value: string(tier)}
	}
	draw := func() int { return low + rng.Intn(high-low+1) }

	switch s {
	case geometry.ShapeSquare, geometry.ShapeEquilateral,
		geometry.ShapePentagon, geometry.ShapeHexagon:
		return geometry.Dims{Side: draw()}, nil

	case geometry.ShapeRectangle:
		w, h := draw(), draw()
		if w == h {
			// Avoid the square case without leaving the range.
			if w < high {
				w++
			} else {
				w = low
			}
		}
		return geometry.Dims{Width: w, Height: h}, nil

	case geometry.ShapeIsosceles:
		return geometry.Dims{Base: draw(), Altitude: draw()}, nil

	case geometry.ShapeScalene:
		for attempt := 0; attempt < maxAttempts; attempt++ {
			a, b, c := draw(), draw(), draw()
			if validTriangle(a, b, c) && a != b && b != c && a != c {
				return geometry.Dims{A: a, B: b, C: c}, nil
			}
		}
		return geometry.Dims{}, &GenerationError{Stage: "dimensions", Attempts: maxAttempts}

	case geometry.ShapeTrapezium:
		if high-low < 2 {
			return geometry.Dims{}, &ConfigurationError{
				Field: "tier",
				Value: string(tier),
				Hint:  "range too narrow for a trapezium",
			}
		}
		// Parallel sides differ by at least 2 and both stay in range.
		top := low + rng.Intn(high-2-low+1)
		bottom := top + 2 + rng.Intn(high-(top+2)+1)
		return geometry.Dims{Top: top, Bottom: bottom, Altitude: draw()}, nil

	case geometry.ShapeParallelogram:
		b, h := draw(), draw()
		maxSlant := min(10, b/2)
		if maxSlant < 2 {
			maxSlant = 2
		}
		return geometry.Dims{Base: b, Altitude: h, Slant: 1 + rng.Intn(maxSlant)}, nil

	case geometry.ShapeCircle:
		return geometry.Dims{Radius: draw()}, nil

	default:
		return geometry.Dims{}, &ConfigurationError{Field: "shape", Value: string(s)}
	}
}

// validTriangle reports whether three side lengths satisfy the strict
// triangle inequality.
func validTriangle(a, b, c int) bool {
	return a+b > c && a+c > b && b+c > a
}
