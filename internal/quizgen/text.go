package quizgen

import (
	"fmt"

	"github.com/abhisek/geometriq/internal/geometry"
)

// Question prompts are fixed strings so the phrasing matches the product's
// existing question banks exactly.
const (
	areaText          = "What is the area of the given shape?"
	perimeterText     = "What is the perimeter of the given shape?"
	circumferenceText = "What is the circumference of the given shape?"
	symmetryText      = "How many lines of symmetry does this shape contain?"
)

// questionText returns the prompt for the area, perimeter and symmetry kinds.
func questionText(s geometry.Shape, k geometry.Kind) string {
	switch k {
	case geometry.KindArea:
		return areaText
	case geometry.KindPerimeter:
		if s == geometry.ShapeCircle {
			return circumferenceText
		}
		return perimeterText
	case geometry.KindSymmetry:
		return symmetryText
	default:
		return ""
	}
}

// missingText states the known quantity and asks for the hidden dimension,
// e.g. "The area is 25 cm². Find the side length (in cm)."
func missingText(s geometry.Shape, known geometry.Kind, knownValue int, hidden string) string {
	name, unit := "perimeter", "cm"
	if known == geometry.KindArea {
		name, unit = "area", "cm²"
	} else if s == geometry.ShapeCircle {
		name = "circumference"
	}
	return fmt.Sprintf("The %s is %d %s. Find the %s (in cm).", name, knownValue, unit, hidden)
}
