package quizgen

import (
	"math"

	"github.com/abhisek/geometriq/internal/geometry"
)

// ComputeAnswer applies the shape's closed-form formula for the question
// kind. Intermediates are floating point; the result is rounded to the
// nearest integer with halves away from zero.
func ComputeAnswer(s geometry.Shape, d geometry.Dims, k geometry.Kind) (int, error) {
	switch k {
	case geometry.KindArea:
		v, ok := geometry.Area(s, d)
		if !ok {
			return 0, &ConfigurationError{Field: "shape", Value: string(s)}
		}
		return int(math.Round(v)), nil

	case geometry.KindPerimeter:
		v, ok := geometry.Perimeter(s, d)
		if !ok {
			return 0, &ConfigurationError{Field: "shape", Value: string(s)}
		}
		return int(math.Round(v)), nil

	case geometry.KindMissing:
		v, ok := geometry.HiddenValue(s, d)
		if !ok {
			return 0, &ConfigurationError{Field: "shape", Value: string(s)}
		}
		return v, nil

	case geometry.KindSymmetry:
		v, ok := geometry.SymmetryLines(s)
		if !ok {
			if s == geometry.ShapeCircle {
				return 0, &ConfigurationError{
					Field: "kind",
					Value: string(k),
					Hint:  "symmetry is undefined for the circle",
				}
			}
			return 0, &ConfigurationError{Field: "shape", Value: string(s)}
		}
		return v, nil

	default:
		return 0, &ConfigurationError{Field: "kind", Value: string(k)}
	}
}
