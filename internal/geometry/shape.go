package geometry

import "fmt"

// Shape identifies one figure in the closed shape catalogue.
type Shape string

const (
	ShapeSquare        Shape = "square"
	ShapeRectangle     Shape = "rectangle"
	ShapeEquilateral   Shape = "equilateral_triangle"
	ShapeIsosceles     Shape = "isosceles_triangle"
	ShapeScalene       Shape = "scalene_triangle"
	ShapeTrapezium     Shape = "trapezium" // isosceles trapezium
	ShapeParallelogram Shape = "parallelogram"
	ShapeCircle        Shape = "circle"
	ShapePentagon      Shape = "regular_pentagon"
	ShapeHexagon       Shape = "regular_hexagon"
)

// AllShapes returns the full catalogue in display order.
func AllShapes() []Shape {
	return []Shape{
		ShapeSquare,
		ShapeRectangle,
		ShapeEquilateral,
		ShapeIsosceles,
		ShapeScalene,
		ShapeTrapezium,
		ShapeParallelogram,
		ShapeCircle,
		ShapePentagon,
		ShapeHexagon,
	}
}

// ShapeDisplayName returns a human-readable name for a shape.
func ShapeDisplayName(s Shape) string {
	switch s {
	case ShapeSquare:
		return "Square"
	case ShapeRectangle:
		return "Rectangle"
	case ShapeEquilateral:
		return "Equilateral Triangle"
	case ShapeIsosceles:
		return "Isosceles Triangle"
	case ShapeScalene:
		return "Scalene Triangle"
	case ShapeTrapezium:
		return "Trapezium"
	case ShapeParallelogram:
		return "Parallelogram"
	case ShapeCircle:
		return "Circle"
	case ShapePentagon:
		return "Regular Pentagon"
	case ShapeHexagon:
		return "Regular Hexagon"
	default:
		return string(s)
	}
}

// ParseShape resolves a shape name as used in blueprints, manifests and flags.
func ParseShape(name string) (Shape, error) {
	for _, s := range AllShapes() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown shape %q", name)
}

// PolygonSides returns the side count for the regular polygons in the
// catalogue and false for every other shape.
func PolygonSides(s Shape) (int, bool) {
	switch s {
	case ShapePentagon:
		return 5, true
	case ShapeHexagon:
		return 6, true
	default:
		return 0, false
	}
}
