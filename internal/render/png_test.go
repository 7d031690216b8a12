package render

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/geometriq/internal/figure"
	"github.com/abhisek/geometriq/internal/geometry"
)

func TestPNG_RenderWritesImage(t *testing.T) {
	fig, ok := figure.Build(geometry.ShapeSquare, geometry.Dims{Side: 5}, false)
	if !ok {
		t.Fatal("Build(square) not defined")
	}

	path := filepath.Join(t.TempDir(), "images", "easy", "Q0.png")
	r := NewPNG()
	if err := r.Render(fig, path); err != nil {
		t.Fatalf("Render: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open rendered file: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 375 || cfg.Height != 375 {
		t.Errorf("canvas %dx%d, want 375x375", cfg.Width, cfg.Height)
	}
}

func TestPNG_RenderEveryShape(t *testing.T) {
	dims := map[geometry.Shape]geometry.Dims{
		geometry.ShapeSquare:        {Side: 5},
		geometry.ShapeRectangle:     {Width: 9, Height: 4},
		geometry.ShapeEquilateral:   {Side: 6},
		geometry.ShapeIsosceles:     {Base: 8, Altitude: 5},
		geometry.ShapeScalene:       {A: 6, B: 7, C: 9},
		geometry.ShapeTrapezium:     {Top: 3, Bottom: 7, Altitude: 4},
		geometry.ShapeParallelogram: {Base: 7, Altitude: 3, Slant: 2},
		geometry.ShapeCircle:        {Radius: 4},
		geometry.ShapePentagon:      {Side: 3},
		geometry.ShapeHexagon:       {Side: 2},
	}
	dir := t.TempDir()
	r := NewPNG()
	for shape, d := range dims {
		fig, ok := figure.Build(shape, d, false)
		if !ok {
			t.Fatalf("Build(%s) not defined", shape)
		}
		path := filepath.Join(dir, string(shape)+".png")
		if err := r.Render(fig, path); err != nil {
			t.Fatalf("Render(%s): %v", shape, err)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s: missing or empty image (%v)", shape, err)
		}
	}
}

func TestPNG_RenderNilFigure(t *testing.T) {
	if err := NewPNG().Render(nil, filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Fatal("expected an error for a nil figure")
	}
}

func TestDiscard_WritesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ghost.png")
	fig, _ := figure.Build(geometry.ShapeCircle, geometry.Dims{Radius: 2}, false)
	if err := (Discard{}).Render(fig, path); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("discard renderer produced a file")
	}
}

func TestTransform_PreservesAspectAndFlipsY(t *testing.T) {
	tr := newTransform(figure.Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 5}, 375)

	// Wider than tall: width pins the scale.
	wantScale := 375.0 / (10 + 2*figure.Pad)
	if math.Abs(tr.scale-wantScale) > 1e-9 {
		t.Errorf("scale = %v, want %v", tr.scale, wantScale)
	}

	x0, y0 := tr.apply(figure.Point{X: 0, Y: 0})
	x1, y1 := tr.apply(figure.Point{X: 10, Y: 5})
	if x1 <= x0 {
		t.Errorf("x should grow rightward: %v -> %v", x0, x1)
	}
	if y1 >= y0 {
		t.Errorf("pixel y should shrink as figure y grows: %v -> %v", y0, y1)
	}

	// Equal world distances map to equal pixel distances on both axes.
	ax, _ := tr.apply(figure.Point{X: 1, Y: 0})
	_, by := tr.apply(figure.Point{X: 0, Y: 1})
	if math.Abs((ax-x0)-(y0-by)) > 1e-9 {
		t.Errorf("anisotropic scaling: dx=%v dy=%v", ax-x0, y0-by)
	}
}

func TestShift_MovesAlongLeftNormal(t *testing.T) {
	from, to := shift(figure.Point{X: 0, Y: 0}, figure.Point{X: 4, Y: 0}, 0.25)
	if from.Y != 0.25 || to.Y != 0.25 {
		t.Errorf("horizontal segment should shift up: %+v %+v", from, to)
	}
	from, to = shift(figure.Point{X: 0, Y: 0}, figure.Point{X: 4, Y: 0}, -0.25)
	if from.Y != -0.25 || to.Y != -0.25 {
		t.Errorf("negative offset should shift down: %+v %+v", from, to)
	}
	from, to = shift(figure.Point{X: 0, Y: 0}, figure.Point{X: 0, Y: 4}, 0.25)
	if from.X != -0.25 || to.X != -0.25 {
		t.Errorf("vertical segment should shift left: %+v %+v", from, to)
	}
}
