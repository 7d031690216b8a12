package cmd

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/geometriq/internal/geometry"
	"github.com/abhisek/geometriq/internal/quizgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print generated questions without rendering figures",
	Long: `Generate questions and print them to stdout, no images, no manifest.

This is a stateless developer tool for eyeballing question quality. The
figure's dimension callouts are listed in place of the drawing.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("shape", "", "Pin the shape")
	previewCmd.Flags().String("tier", "", "Pin the difficulty tier")
	previewCmd.Flags().String("kind", "", "Pin the question kind")
	previewCmd.Flags().Int("count", 1, "Number of questions to print")
	previewCmd.Flags().Int64("seed", 0, "Seed for a reproducible preview")
}

func runPreview(cmd *cobra.Command, args []string) error {
	shapeVal, _ := cmd.Flags().GetString("shape")
	tierVal, _ := cmd.Flags().GetString("tier")
	kindVal, _ := cmd.Flags().GetString("kind")
	count, _ := cmd.Flags().GetInt("count")

	seed := time.Now().UnixNano()
	if cmd.Flags().Changed("seed") {
		seed, _ = cmd.Flags().GetInt64("seed")
	}
	rng := rand.New(rand.NewSource(seed))
	gen := quizgen.New(quizgen.DefaultConfig())

	for i := 1; i <= count; i++ {
		in, err := previewInput(rng, shapeVal, tierVal, kindVal)
		if err != nil {
			return err
		}
		q, err := gen.Generate(rng, in)
		if err != nil {
			return err
		}

		fmt.Printf("── Question %d/%d ──\n", i, count)
		fmt.Printf("[%s · %s · %s]\n", geometry.ShapeDisplayName(q.Shape), q.Kind, q.Tier)
		fmt.Println(q.Text)
		if labels := dimensionLabels(q); labels != "" {
			fmt.Printf("Figure: %s\n", labels)
		}
		for _, opt := range q.Options {
			fmt.Printf("  %s) %s\n", opt.Label, opt.Value)
		}
		fmt.Printf("Answer: %s (%d)\n\n", q.CorrectLabel, q.CorrectValue)
	}
	return nil
}

// previewInput resolves the generation input from the pin flags, drawing
// anything unpinned from rng. A pinned kind restricts the shape draw to
// shapes that can ask it.
func previewInput(rng *rand.Rand, shapeVal, tierVal, kindVal string) (quizgen.GenerateInput, error) {
	var in quizgen.GenerateInput
	var err error

	if kindVal != "" {
		if in.Kind, err = geometry.ParseKind(kindVal); err != nil {
			return in, err
		}
	}

	if shapeVal != "" {
		if in.Shape, err = geometry.ParseShape(shapeVal); err != nil {
			return in, err
		}
	} else {
		var candidates []geometry.Shape
		for _, s := range geometry.AllShapes() {
			if in.Kind == "" || kindAllowed(s, in.Kind) {
				candidates = append(candidates, s)
			}
		}
		in.Shape = candidates[rng.Intn(len(candidates))]
	}

	if tierVal != "" {
		if in.Tier, err = geometry.ParseTier(tierVal); err != nil {
			return in, err
		}
	} else {
		tiers := geometry.AllTiers()
		in.Tier = tiers[rng.Intn(len(tiers))]
	}

	if in.Kind == "" {
		kinds := geometry.KindsFor(in.Shape)
		in.Kind = kinds[rng.Intn(len(kinds))]
	}
	return in, nil
}

func kindAllowed(s geometry.Shape, k geometry.Kind) bool {
	for _, allowed := range geometry.KindsFor(s) {
		if allowed == k {
			return true
		}
	}
	return false
}

// dimensionLabels joins the figure's measurement callouts, e.g. "12 cm, ?".
func dimensionLabels(q *quizgen.Question) string {
	if q.Figure == nil {
		return ""
	}
	var labels []string
	for _, d := range q.Figure.Dimensions {
		labels = append(labels, d.Label)
	}
	return strings.Join(labels, ", ")
}
