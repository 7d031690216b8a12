package figure

import (
	"fmt"
	"math"

	"github.com/abhisek/geometriq/internal/geometry"
)

// Build emits the drawing primitives for a sampled shape. When hideMissing is
// set, the dimension hidden by the missing-dimension variant is labeled with
// the Placeholder instead of its value. Returns false for shapes outside the
// catalogue.
func Build(s geometry.Shape, d geometry.Dims, hideMissing bool) (*Figure, bool) {
	switch s {
	case geometry.ShapeSquare:
		return buildSquare(d, hideMissing), true
	case geometry.ShapeRectangle:
		return buildRectangle(d, hideMissing), true
	case geometry.ShapeEquilateral:
		return buildEquilateral(d, hideMissing), true
	case geometry.ShapeIsosceles:
		return buildIsosceles(d, hideMissing), true
	case geometry.ShapeScalene:
		return buildScalene(d, hideMissing), true
	case geometry.ShapeTrapezium:
		return buildTrapezium(d, hideMissing), true
	case geometry.ShapeParallelogram:
		return buildParallelogram(d, hideMissing), true
	case geometry.ShapeCircle:
		return buildCircle(d, hideMissing), true
	case geometry.ShapePentagon, geometry.ShapeHexagon:
		n, _ := geometry.PolygonSides(s)
		return buildRegularPolygon(n, d, hideMissing), true
	default:
		return nil, false
	}
}

func cm(v int) string { return fmt.Sprintf("%d cm", v) }

// label returns the value label, or the placeholder when the dimension is
// the hidden one and hiding is requested.
func label(v int, hidden bool) string {
	if hidden {
		return Placeholder
	}
	return cm(v)
}

func buildSquare(d geometry.Dims, hide bool) *Figure {
	s := float64(d.Side)
	f := &Figure{Bounds: Bounds{0, 0, s, s}}
	f.Rects = append(f.Rects, Rect{0, 0, s, s})
	f.addDimension(Point{0, s}, Point{s, s}, label(d.Side, hide), DimensionOffset) // top, hidden in the missing variant
	f.addDimension(Point{0, 0}, Point{0, s}, cm(d.Side), DimensionOffset)          // left
	return f
}

func buildRectangle(d geometry.Dims, hide bool) *Figure {
	w, h := float64(d.Width), float64(d.Height)
	f := &Figure{Bounds: Bounds{0, 0, w, h}}
	f.Rects = append(f.Rects, Rect{0, 0, w, h})
	f.addDimension(Point{0, h}, Point{w, h}, label(d.Width, hide), DimensionOffset) // width on top
	f.addDimension(Point{0, 0}, Point{0, h}, cm(d.Height), DimensionOffset)
	return f
}

func buildEquilateral(d geometry.Dims, hide bool) *Figure {
	s := float64(d.Side)
	h := math.Sqrt(3) / 2.0 * s
	f := &Figure{Bounds: Bounds{0, 0, s, h}}
	f.Polygons = append(f.Polygons, Polygon{Points: []Point{{0, 0}, {s, 0}, {s / 2, h}}})
	f.addDimension(Point{0, 0}, Point{s, 0}, label(d.Side, hide), -DimensionOffset)
	return f
}

func buildIsosceles(d geometry.Dims, hide bool) *Figure {
	b, h := float64(d.Base), float64(d.Altitude)
	f := &Figure{Bounds: Bounds{0, 0, b, h}}
	f.Polygons = append(f.Polygons, Polygon{Points: []Point{{0, 0}, {b, 0}, {b / 2, h}}})
	f.addDimension(Point{0, 0}, Point{b, 0}, cm(d.Base), -DimensionOffset)
	f.addHeight(Point{b / 2, 0}, Point{b / 2, h}, label(d.Altitude, hide), 0) // hidden in the missing variant
	return f
}

func buildScalene(d geometry.Dims, hide bool) *Figure {
	a, b, c := float64(d.A), float64(d.B), float64(d.C)
	// Apex from the law of cosines with the base on the x-axis.
	x := (b*b + a*a - c*c) / (2 * a)
	y := math.Sqrt(math.Max(b*b-x*x, 0))

	f := &Figure{Bounds: Bounds{math.Min(0, x), 0, math.Max(a, x), math.Max(0, y)}}
	f.Polygons = append(f.Polygons, Polygon{Points: []Point{{0, 0}, {a, 0}, {x, y}}})
	f.addDimension(Point{0, 0}, Point{a, 0}, label(d.A, hide), -DimensionOffset) // base, hidden in the missing variant
	f.addDimension(Point{0, 0}, Point{x, y}, cm(d.B), DimensionOffset)
	f.addDimension(Point{a, 0}, Point{x, y}, cm(d.C), -DimensionOffset)
	return f
}

func buildTrapezium(d geometry.Dims, hide bool) *Figure {
	top, bottom, h := float64(d.Top), float64(d.Bottom), float64(d.Altitude)
	dx := (bottom - top) / 2

	f := &Figure{Bounds: Bounds{0, 0, bottom, h}}
	f.Polygons = append(f.Polygons, Polygon{Points: []Point{{0, 0}, {bottom, 0}, {bottom - dx, h}, {dx, h}}})
	f.addDimension(Point{0, 0}, Point{bottom, 0}, cm(d.Bottom), -DimensionOffset)
	f.addDimension(Point{dx, h}, Point{bottom - dx, h}, cm(d.Top), DimensionOffset)
	f.addDimension(Point{0, 0}, Point{0, h}, label(d.Altitude, hide), DimensionOffset)
	return f
}

func buildParallelogram(d geometry.Dims, hide bool) *Figure {
	b, h, slant := float64(d.Base), float64(d.Altitude), float64(d.Slant)

	f := &Figure{Bounds: Bounds{0, 0, b + slant, h}}
	f.Polygons = append(f.Polygons, Polygon{Points: []Point{{0, 0}, {b, 0}, {b + slant, h}, {slant, h}}})
	f.addDimension(Point{0, 0}, Point{b, 0}, label(d.Base, hide), -DimensionOffset)
	f.addHeight(Point{slant, 0}, Point{slant, h}, cm(d.Altitude), DimensionOffset)
	return f
}

func buildCircle(d geometry.Dims, hide bool) *Figure {
	r := float64(d.Radius)

	f := &Figure{Bounds: Bounds{-r - 1, -r - 1, r + 1, r + 1}}
	f.Circles = append(f.Circles, Circle{Center: Point{0, 0}, R: r})
	f.Lines = append(f.Lines, Line{Point{-r, 0}, Point{r, 0}}) // diameter chord
	// The chord is labeled with the diameter; the missing variant hides it
	// and the question asks for the radius.
	f.addDimension(Point{-r, 0}, Point{r, 0}, label(2*d.Radius, hide), -0.3)
	return f
}

func buildRegularPolygon(n int, d geometry.Dims, hide bool) *Figure {
	s := float64(d.Side)
	// Circumradius; rotate so one side lies flat at the bottom.
	r := s / (2 * math.Sin(math.Pi/float64(n)))
	theta0 := -math.Pi/2 - math.Pi/float64(n)

	pts := make([]Point, n)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for k := 0; k < n; k++ {
		angle := theta0 + 2*math.Pi*float64(k)/float64(n)
		p := Point{r * math.Cos(angle), r * math.Sin(angle)}
		pts[k] = p
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Lowest edge carries the side-length callout.
	low := 0
	lowMid := math.Inf(1)
	for i := 0; i < n; i++ {
		mid := (pts[i].Y + pts[(i+1)%n].Y) / 2
		if mid < lowMid {
			lowMid = mid
			low = i
		}
	}
	p1, p2 := pts[low], pts[(low+1)%n]

	f := &Figure{Bounds: Bounds{minX, minY, maxX, maxY}}
	f.Polygons = append(f.Polygons, Polygon{Points: pts})
	f.addDimension(p1, p2, label(d.Side, hide), -DimensionOffset)
	return f
}
