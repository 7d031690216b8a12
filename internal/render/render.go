package render

import "github.com/abhisek/geometriq/internal/figure"

// Renderer rasterizes a figure into an image file at path.
type Renderer interface {
	Render(fig *figure.Figure, path string) error
}

// Discard draws nothing. Dry runs use it when only the question payload
// matters.
type Discard struct{}

func (Discard) Render(*figure.Figure, string) error { return nil }
