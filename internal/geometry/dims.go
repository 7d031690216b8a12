package geometry

// Dims holds the integer dimensions (in cm) of one sampled figure. Only the
// fields for the owning shape are set; everything else stays zero.
type Dims struct {
	// Side is the side length of a square, equilateral triangle or regular
	// polygon.
	Side int

	// Width and Height describe a rectangle (Width != Height).
	Width  int
	Height int

	// Base and Altitude describe an isosceles triangle or a parallelogram.
	Base     int
	Altitude int

	// A, B, C are the sides of a scalene triangle. A is the base.
	A, B, C int

	// Top and Bottom are the parallel sides of a trapezium (Top < Bottom);
	// Altitude carries its height.
	Top    int
	Bottom int

	// Slant is the horizontal offset of a parallelogram's upper edge.
	Slant int

	// Radius is the circle radius.
	Radius int
}
