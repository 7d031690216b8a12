package cmd

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/geometriq/internal/bank"
	"github.com/abhisek/geometriq/internal/config"
	"github.com/abhisek/geometriq/internal/manifest"
	"github.com/abhisek/geometriq/internal/worksheet"
)

var worksheetCmd = &cobra.Command{
	Use:   "worksheet",
	Short: "Build a printable worksheet PDF",
	Long: `Sample questions from the bank or a manifest and lay them out as a
printable A4 worksheet: cover page with a contents table, numbered questions
with their figures, and an answer key.

Sampling drops duplicate questions, caps how many questions any one shape
contributes, and caps the total. --shape narrows the pick to shapes matching
a prefix, e.g. --shape reg for the regular polygons.`,
	RunE: runWorksheet,
}

func init() {
	worksheetCmd.Flags().String("manifest", "", "Build from a manifest instead of the bank")
	worksheetCmd.Flags().String("out", "worksheet.pdf", "Output PDF path")
	worksheetCmd.Flags().String("title", "", "Worksheet title")
	worksheetCmd.Flags().Int("per-shape", 0, "Questions per shape")
	worksheetCmd.Flags().Int("total", 0, "Total question cap")
	worksheetCmd.Flags().String("shape", "", "Only shapes matching this prefix")
	worksheetCmd.Flags().Int64("seed", 0, "Seed for a reproducible selection")
	worksheetCmd.Flags().String("images", "", "Figure directory for bank questions")
}

func runWorksheet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	records, imageDir, err := selectStudyRecords(cmd, cfg)
	if err != nil {
		return err
	}
	picked := worksheet.Sample(records, sampleOptions(cmd, cfg), studyRng(cmd))
	if len(picked) == 0 {
		return fmt.Errorf("no questions to print")
	}

	title := cfg.Worksheet.Title
	if cmd.Flags().Changed("title") {
		title, _ = cmd.Flags().GetString("title")
	}

	out, _ := cmd.Flags().GetString("out")
	if err := worksheet.Write(out, picked, worksheet.Options{
		Title:    title,
		ImageDir: imageDir,
	}); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d questions)\n", out, len(picked))
	return nil
}

// selectStudyRecords loads the candidate questions for a worksheet or
// flashcard run, along with the directory their figure paths resolve
// against. The bank stores paths relative to each manifest, so bank
// selections need --images to place figures.
func selectStudyRecords(cmd *cobra.Command, cfg *config.Config) ([]manifest.Record, string, error) {
	if path, _ := cmd.Flags().GetString("manifest"); path != "" {
		records, err := manifest.Load(path)
		if err != nil {
			return nil, "", err
		}
		return records, filepath.Dir(path), nil
	}

	s, err := openBank(cmd, cfg)
	if err != nil {
		return nil, "", err
	}
	defer s.Close()

	questions, err := s.Questions().List(cmd.Context(), bank.Filter{}, 0)
	if err != nil {
		return nil, "", err
	}
	records := make([]manifest.Record, len(questions))
	for i, q := range questions {
		records[i] = bank.RecordOf(q)
	}
	imageDir := ""
	if f := cmd.Flags().Lookup("images"); f != nil {
		imageDir = f.Value.String()
	}
	return records, imageDir, nil
}

// sampleOptions merges the sampling flags over the config defaults.
func sampleOptions(cmd *cobra.Command, cfg *config.Config) worksheet.SampleOptions {
	opts := worksheet.SampleOptions{
		PerShape: cfg.Worksheet.PerShape,
		Total:    cfg.Worksheet.Total,
	}
	if cmd.Flags().Changed("per-shape") {
		opts.PerShape, _ = cmd.Flags().GetInt("per-shape")
	}
	if cmd.Flags().Changed("total") {
		opts.Total, _ = cmd.Flags().GetInt("total")
	}
	opts.ShapePrefix, _ = cmd.Flags().GetString("shape")
	return opts
}

// studyRng seeds the selection stream from --seed, or the clock.
func studyRng(cmd *cobra.Command) *rand.Rand {
	seed := time.Now().UnixNano()
	if cmd.Flags().Changed("seed") {
		seed, _ = cmd.Flags().GetInt64("seed")
	}
	return rand.New(rand.NewSource(seed))
}
