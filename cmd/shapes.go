package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/geometriq/internal/geometry"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List the shape catalogue",
	Run: func(cmd *cobra.Command, args []string) {
		// Header.
		fmt.Printf("%-22s  %-24s  %-22s  %-8s  %s\n",
			"Shape", "Area", "Perimeter", "Symmetry", "Kinds")
		fmt.Println(strings.Repeat("─", 96))

		for _, s := range geometry.AllShapes() {
			area, perim := formulasFor(s)
			fmt.Printf("%-22s  %-24s  %-22s  %-8s  %s\n",
				geometry.ShapeDisplayName(s), area, perim,
				symmetryFor(s), kindsFor(s))
		}
	},
}

// formulasFor returns display strings for a shape's area and perimeter.
func formulasFor(s geometry.Shape) (area, perimeter string) {
	switch s {
	case geometry.ShapeSquare:
		return "a²", "4a"
	case geometry.ShapeRectangle:
		return "w·h", "2(w+h)"
	case geometry.ShapeEquilateral:
		return "(√3/4)·a²", "3a"
	case geometry.ShapeIsosceles:
		return "½·b·h", "b + 2·leg"
	case geometry.ShapeScalene:
		return "Heron(a,b,c)", "a+b+c"
	case geometry.ShapeTrapezium:
		return "½·(top+bottom)·h", "top+bottom + 2·leg"
	case geometry.ShapeParallelogram:
		return "b·h", "2(b+side)"
	case geometry.ShapeCircle:
		return "πr²", "2πr"
	case geometry.ShapePentagon:
		return "(5a²)/(4·tan 36°)", "5a"
	case geometry.ShapeHexagon:
		return "(3√3/2)·a²", "6a"
	default:
		return "", ""
	}
}

func symmetryFor(s geometry.Shape) string {
	n, ok := geometry.SymmetryLines(s)
	if !ok {
		return "∞"
	}
	return fmt.Sprintf("%d", n)
}

func kindsFor(s geometry.Shape) string {
	kinds := geometry.KindsFor(s)
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
