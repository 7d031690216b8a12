package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/geometriq/internal/bank"
	"github.com/abhisek/geometriq/internal/manifest"
	"github.com/abhisek/geometriq/internal/player"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Practice questions in the terminal",
	Long: `Answer multiple-choice questions one at a time with instant feedback
and an accuracy summary at the end.

Questions come from the bank by default, with every answer recorded for
the accuracy breakdowns in bank stats. --manifest plays a manifest file
directly without touching the bank.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().String("manifest", "", "Play a manifest instead of the bank")
	playCmd.Flags().Int("limit", 10, "Number of questions in the round")
	playCmd.Flags().String("shape", "", "Filter by shape")
	playCmd.Flags().String("tier", "", "Filter by difficulty tier")
	playCmd.Flags().String("kind", "", "Filter by question kind")
	playCmd.Flags().Int64("seed", 0, "Seed for a reproducible draw")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// File-only logging: the TUI owns the terminal.
	logger, err := newLogger(cmd, cfg, false)
	if err != nil {
		return err
	}
	defer logger.Sync()

	limit, _ := cmd.Flags().GetInt("limit")
	rng := studyRng(cmd)

	if path, _ := cmd.Flags().GetString("manifest"); path != "" {
		records, err := manifest.Load(path)
		if err != nil {
			return err
		}
		items := player.ItemsFromRecords(records)
		rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
		if limit > 0 && len(items) > limit {
			items = items[:limit]
		}
		return player.Run(items, nil)
	}

	s, err := openBank(cmd, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	f, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}
	questions, err := s.Questions().List(cmd.Context(), f, 0)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return fmt.Errorf("the bank has no matching questions; run generate --bank or bank import first")
	}

	rng.Shuffle(len(questions), func(i, j int) { questions[i], questions[j] = questions[j], questions[i] })
	if limit > 0 && len(questions) > limit {
		questions = questions[:limit]
	}

	items := make([]player.Item, len(questions))
	for i, q := range questions {
		items[i] = player.Item{Record: bank.RecordOf(q), QuestionID: q.ID}
	}

	logger.Info("practice round starting", zap.Int("questions", len(items)))
	return player.Run(items, s.Attempts())
}
