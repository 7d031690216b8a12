package render

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/abhisek/geometriq/internal/figure"
)

// PNG renders figures onto a square canvas with a white background and
// black outlines.
type PNG struct {
	Size      int     // canvas edge in pixels
	LineWidth float64 // outline stroke width in pixels
}

// NewPNG returns a renderer with the stock 375px canvas.
func NewPNG() *PNG {
	return &PNG{Size: 375, LineWidth: 2}
}

// Render rasterizes fig and writes it to path, creating parent directories
// as needed.
func (r *PNG) Render(fig *figure.Figure, path string) error {
	if fig == nil {
		return errors.New("render: nil figure")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("render: create image dir: %w", err)
	}

	dc := gg.NewContext(r.Size, r.Size)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(r.LineWidth)

	tr := newTransform(fig.Bounds, float64(r.Size))

	for _, l := range fig.Lines {
		x1, y1 := tr.apply(l.From)
		x2, y2 := tr.apply(l.To)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}
	for _, rect := range fig.Rects {
		strokePolygon(dc, tr, []figure.Point{
			{X: rect.X, Y: rect.Y},
			{X: rect.X + rect.W, Y: rect.Y},
			{X: rect.X + rect.W, Y: rect.Y + rect.H},
			{X: rect.X, Y: rect.Y + rect.H},
		})
	}
	for _, p := range fig.Polygons {
		strokePolygon(dc, tr, p.Points)
	}
	for _, c := range fig.Circles {
		x, y := tr.apply(c.Center)
		dc.DrawCircle(x, y, c.R*tr.scale)
		dc.Stroke()
	}
	for _, d := range fig.Dimensions {
		r.drawDimension(dc, tr, d)
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

func strokePolygon(dc *gg.Context, tr transform, pts []figure.Point) {
	if len(pts) == 0 {
		return
	}
	x, y := tr.apply(pts[0])
	dc.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = tr.apply(p)
		dc.LineTo(x, y)
	}
	dc.ClosePath()
	dc.Stroke()
}

// drawDimension draws the callout line shifted off the measured edge, then
// the label in a white box so it stays legible over strokes.
func (r *PNG) drawDimension(dc *gg.Context, tr transform, d figure.Dimension) {
	from, to := shift(d.From, d.To, d.Offset)
	x1, y1 := tr.apply(from)
	x2, y2 := tr.apply(to)

	if d.Dashed {
		dc.SetDash(6, 4)
	}
	dc.SetLineWidth(1)
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
	dc.SetDash()
	dc.SetLineWidth(r.LineWidth)

	mx, my := (x1+x2)/2, (y1+y2)/2
	angle := math.Atan2(y2-y1, x2-x1)
	// Keep labels upright regardless of segment direction.
	if angle > math.Pi/2 {
		angle -= math.Pi
	} else if angle < -math.Pi/2 {
		angle += math.Pi
	}

	w, h := dc.MeasureString(d.Label)
	dc.Push()
	dc.RotateAbout(angle, mx, my)
	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(mx-w/2-3, my-h/2-3, w+6, h+6)
	dc.Fill()
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(d.Label, mx, my, 0.5, 0.5)
	dc.Pop()
}

// shift moves the segment by offset along its left normal in figure space.
func shift(from, to figure.Point, offset float64) (figure.Point, figure.Point) {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 || offset == 0 {
		return from, to
	}
	nx, ny := -dy/length, dx/length
	from.X += nx * offset
	from.Y += ny * offset
	to.X += nx * offset
	to.Y += ny * offset
	return from, to
}

// transform maps figure space (y up) onto the pixel grid (y down),
// preserving aspect ratio and centering the padded bounds.
type transform struct {
	scale      float64
	minX, minY float64
	offX, offY float64
	size       float64
}

func newTransform(b figure.Bounds, size float64) transform {
	minX := b.MinX - figure.Pad
	minY := b.MinY - figure.Pad
	w := b.MaxX + figure.Pad - minX
	h := b.MaxY + figure.Pad - minY
	scale := size / w
	if s := size / h; s < scale {
		scale = s
	}
	return transform{
		scale: scale,
		minX:  minX,
		minY:  minY,
		offX:  (size - w*scale) / 2,
		offY:  (size - h*scale) / 2,
		size:  size,
	}
}

func (t transform) apply(p figure.Point) (x, y float64) {
	x = t.offX + (p.X-t.minX)*t.scale
	y = t.size - t.offY - (p.Y-t.minY)*t.scale
	return x, y
}
