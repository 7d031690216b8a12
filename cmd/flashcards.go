package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/geometriq/internal/worksheet"
)

var flashcardsCmd = &cobra.Command{
	Use:   "flashcards",
	Short: "Build a printable flashcard PDF",
	Long: `Sample questions like the worksheet command does and lay them out as
cut-out flashcards, ten per page, with an answer sheet at the back.`,
	RunE: runFlashcards,
}

func init() {
	flashcardsCmd.Flags().String("manifest", "", "Build from a manifest instead of the bank")
	flashcardsCmd.Flags().String("out", "flashcards.pdf", "Output PDF path")
	flashcardsCmd.Flags().String("title", "", "Deck title")
	flashcardsCmd.Flags().Int("per-shape", 0, "Questions per shape")
	flashcardsCmd.Flags().Int("total", 0, "Total question cap")
	flashcardsCmd.Flags().String("shape", "", "Only shapes matching this prefix")
	flashcardsCmd.Flags().Int64("seed", 0, "Seed for a reproducible selection")
}

func runFlashcards(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	records, _, err := selectStudyRecords(cmd, cfg)
	if err != nil {
		return err
	}
	picked := worksheet.Sample(records, sampleOptions(cmd, cfg), studyRng(cmd))
	if len(picked) == 0 {
		return fmt.Errorf("no questions to print")
	}

	title, _ := cmd.Flags().GetString("title")

	out, _ := cmd.Flags().GetString("out")
	if err := worksheet.WriteFlashcards(out, picked, title); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d cards)\n", out, len(picked))
	return nil
}
