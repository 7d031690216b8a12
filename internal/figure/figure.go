package figure

// Figure-space units are centimeters, matching the sampled dimensions.

// Pad is the whitespace margin added around Bounds when rendering.
const Pad = 0.8

// DimensionOffset is the normal shift applied to dimension lines so they sit
// clear of the shape border.
const DimensionOffset = 0.25

// Placeholder is the label of a hidden dimension (no units).
const Placeholder = "?"

// Point is a position in figure space.
type Point struct {
	X, Y float64
}

// Line is a straight segment.
type Line struct {
	From, To Point
}

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Polygon is a closed polygon.
type Polygon struct {
	Points []Point
}

// Circle is a circle around Center.
type Circle struct {
	Center Point
	R      float64
}

// Dimension is a measurement callout: the segment From->To shifted by
// Offset along its left normal (negative offsets shift right), with Label
// centered on the shifted midpoint. Label is "N cm" or Placeholder.
// Dashed marks interior construction lines such as altitudes.
type Dimension struct {
	From, To Point
	Label    string
	Offset   float64
	Dashed   bool
}

// Bounds is the drawable extent of a figure before padding.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Figure holds the drawing primitives for one question. Dimensions are drawn
// last so callouts and labels stay on top of shape outlines.
type Figure struct {
	Bounds     Bounds
	Lines      []Line
	Rects      []Rect
	Polygons   []Polygon
	Circles    []Circle
	Dimensions []Dimension
}

func (f *Figure) addDimension(from, to Point, label string, offset float64) {
	f.Dimensions = append(f.Dimensions, Dimension{
		From:   from,
		To:     to,
		Label:  label,
		Offset: offset,
	})
}

// addHeight marks an altitude as a dashed construction line.
func (f *Figure) addHeight(from, to Point, label string, offset float64) {
	f.Dimensions = append(f.Dimensions, Dimension{
		From:   from,
		To:     to,
		Label:  label,
		Offset: offset,
		Dashed: true,
	})
}
