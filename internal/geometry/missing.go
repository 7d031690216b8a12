package geometry

// MissingSpec describes the missing-dimension variant for a shape: which
// dimension is hidden behind the "?" placeholder and which derived quantity
// the question states instead.
type MissingSpec struct {
	// Hidden is the display name of the hidden dimension as it appears in
	// the question text, e.g. "side length" or "height".
	Hidden string

	// Known is the quantity the question states (KindArea or KindPerimeter).
	Known Kind
}

// MissingFor returns the missing-dimension rule for a shape.
func MissingFor(s Shape) (MissingSpec, bool) {
	switch s {
	case ShapeSquare, ShapeEquilateral:
		return MissingSpec{Hidden: "side length", Known: KindArea}, true
	case ShapeRectangle:
		return MissingSpec{Hidden: "width", Known: KindArea}, true
	case ShapeIsosceles, ShapeTrapezium:
		return MissingSpec{Hidden: "height", Known: KindArea}, true
	case ShapeScalene:
		return MissingSpec{Hidden: "missing side", Known: KindPerimeter}, true
	case ShapeParallelogram:
		return MissingSpec{Hidden: "base", Known: KindArea}, true
	case ShapeCircle:
		return MissingSpec{Hidden: "radius", Known: KindPerimeter}, true
	case ShapePentagon, ShapeHexagon:
		return MissingSpec{Hidden: "side length", Known: KindPerimeter}, true
	default:
		return MissingSpec{}, false
	}
}

// HiddenValue returns the value of the dimension hidden by the
// missing-dimension variant.
func HiddenValue(s Shape, d Dims) (int, bool) {
	switch s {
	case ShapeSquare, ShapeEquilateral, ShapePentagon, ShapeHexagon:
		return d.Side, true
	case ShapeRectangle:
		return d.Width, true
	case ShapeIsosceles, ShapeTrapezium:
		return d.Altitude, true
	case ShapeScalene:
		return d.A, true
	case ShapeParallelogram:
		return d.Base, true
	case ShapeCircle:
		return d.Radius, true
	default:
		return 0, false
	}
}
