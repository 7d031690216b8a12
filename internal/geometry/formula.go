package geometry

import "math"

// Area returns the exact area of a shape in cm² and false when the shape is
// not in the catalogue. Intermediates are floating point; callers decide how
// to round.
func Area(s Shape, d Dims) (float64, bool) {
	switch s {
	case ShapeSquare:
		return float64(d.Side * d.Side), true
	case ShapeRectangle:
		return float64(d.Width * d.Height), true
	case ShapeEquilateral:
		return (math.Sqrt(3) / 4.0) * float64(d.Side*d.Side), true
	case ShapeIsosceles:
		return 0.5 * float64(d.Base*d.Altitude), true
	case ShapeScalene:
		// Heron's formula; the max guards float noise near degenerate triples.
		a, b, c := float64(d.A), float64(d.B), float64(d.C)
		p := 0.5 * (a + b + c)
		return math.Sqrt(math.Max(p*(p-a)*(p-b)*(p-c), 0)), true
	case ShapeTrapezium:
		return float64(d.Top+d.Bottom) * float64(d.Altitude) / 2.0, true
	case ShapeParallelogram:
		return float64(d.Base * d.Altitude), true
	case ShapeCircle:
		return math.Pi * float64(d.Radius*d.Radius), true
	case ShapePentagon, ShapeHexagon:
		n, _ := PolygonSides(s)
		return float64(n*d.Side*d.Side) / (4.0 * math.Tan(math.Pi/float64(n))), true
	default:
		return 0, false
	}
}

// Perimeter returns the exact perimeter of a shape in cm (circumference for
// the circle) and false when the shape is not in the catalogue.
func Perimeter(s Shape, d Dims) (float64, bool) {
	switch s {
	case ShapeSquare:
		return float64(4 * d.Side), true
	case ShapeRectangle:
		return float64(2 * (d.Width + d.Height)), true
	case ShapeEquilateral:
		return float64(3 * d.Side), true
	case ShapeIsosceles:
		leg := math.Hypot(float64(d.Base)/2.0, float64(d.Altitude))
		return float64(d.Base) + 2*leg, true
	case ShapeScalene:
		return float64(d.A + d.B + d.C), true
	case ShapeTrapezium:
		leg := math.Hypot(float64(d.Bottom-d.Top)/2.0, float64(d.Altitude))
		return float64(d.Top+d.Bottom) + 2*leg, true
	case ShapeParallelogram:
		side := math.Hypot(float64(d.Slant), float64(d.Altitude))
		return 2 * (float64(d.Base) + side), true
	case ShapeCircle:
		return 2 * math.Pi * float64(d.Radius), true
	case ShapePentagon, ShapeHexagon:
		n, _ := PolygonSides(s)
		return float64(n * d.Side), true
	default:
		return 0, false
	}
}

// SymmetryLines returns the number of symmetry lines for a shape. The second
// return is false for the circle (infinitely many) and for shapes outside the
// catalogue.
func SymmetryLines(s Shape) (int, bool) {
	switch s {
	case ShapeSquare:
		return 4, true
	case ShapeRectangle:
		return 2, true
	case ShapeEquilateral:
		return 3, true
	case ShapeIsosceles:
		return 1, true
	case ShapeScalene:
		return 0, true
	case ShapeTrapezium:
		return 1, true // isosceles trapezium
	case ShapeParallelogram:
		return 0, true
	case ShapePentagon:
		return 5, true
	case ShapeHexagon:
		return 6, true
	default:
		return 0, false
	}
}

// SymmetryPool returns the distractor candidate pool for a shape's symmetry
// question. Every pool holds at least five distinct values including the
// shape's own symmetry count, so a full option set can always be drawn.
func SymmetryPool(s Shape) []int {
	switch s {
	case ShapeSquare:
		return []int{0, 1, 2, 3, 4, 6}
	case ShapeRectangle:
		return []int{0, 1, 2, 3, 4}
	case ShapeEquilateral:
		return []int{0, 1, 2, 3, 6}
	case ShapeIsosceles, ShapeScalene, ShapeTrapezium, ShapeParallelogram:
		return []int{0, 1, 2, 3, 4}
	case ShapePentagon:
		return []int{0, 1, 2, 3, 4, 5}
	case ShapeHexagon:
		return []int{0, 1, 2, 3, 4, 5, 6}
	default:
		return nil
	}
}
