package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/geometriq/internal/bank"
	"github.com/abhisek/geometriq/internal/geometry"
	"github.com/abhisek/geometriq/internal/manifest"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Manage the question bank",
}

var bankStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show bank contents and practice accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openBank(cmd, cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		questions, err := s.Questions().List(ctx, bank.Filter{}, 0)
		if err != nil {
			return err
		}

		records := make([]manifest.Record, len(questions))
		for i, q := range questions {
			records[i] = bank.RecordOf(q)
		}
		stats := manifest.Summarize(records)

		fmt.Printf("Questions: %d\n", stats.Total)
		printBreakdown("difficulty", stats.ByDifficulty)
		printBreakdown("shape", stats.ByShape)
		printBreakdown("kind", stats.ByKind)

		attempts, err := s.Attempts().Stats(ctx)
		if err != nil {
			return err
		}
		if attempts.Overall.Total > 0 {
			fmt.Printf("\nPractice: %d attempts, %.0f%% correct\n",
				attempts.Overall.Total, attempts.Overall.Rate()*100)
			printAccuracy("difficulty", attempts.ByDifficulty)
			printAccuracy("shape", attempts.ByShape)
			printAccuracy("kind", attempts.ByKind)
		}

		runs, err := s.Runs().List(ctx, 5)
		if err != nil {
			return err
		}
		if len(runs) > 0 {
			fmt.Printf("\n%-19s  %-36s  %-20s  %6s  %7s\n",
				"Recorded", "Run", "Seed", "Total", "Skipped")
			fmt.Println(strings.Repeat("─", 96))
			for _, r := range runs {
				fmt.Printf("%-19s  %-36s  %-20d  %6d  %7d\n",
					r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					r.UID, r.Seed, r.Total, r.Skipped)
			}
		}
		return nil
	},
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List banked questions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openBank(cmd, cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		f, err := filterFromFlags(cmd)
		if err != nil {
			return err
		}

		questions, err := s.Questions().List(cmd.Context(), f, limit)
		if err != nil {
			return err
		}
		if len(questions) == 0 {
			fmt.Println("No questions in the bank.")
			return nil
		}

		// Header.
		fmt.Printf("%-5s  %-10s  %-20s  %-9s  %-44s  %s\n",
			"ID", "Difficulty", "Shape", "Kind", "Question", "Answer")
		fmt.Println(strings.Repeat("─", 104))

		for _, q := range questions {
			text := q.QuestionText
			if len(text) > 44 {
				text = text[:41] + "..."
			}
			fmt.Printf("%-5d  %-10s  %-20s  %-9s  %-44s  %s\n",
				q.ID, q.Difficulty, q.Shape, q.Kind, text, q.Answer)
		}
		return nil
	},
}

var bankImportCmd = &cobra.Command{
	Use:   "import <manifest>",
	Short: "Import a manifest into the bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		records, err := manifest.Load(args[0])
		if err != nil {
			return err
		}
		if err := manifest.Validate(records); err != nil {
			return err
		}

		s, err := openBank(cmd, cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		run, err := s.Runs().Record(ctx, bank.RunData{
			Total:        len(records),
			ManifestPath: args[0],
		})
		if err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		added, dups, err := s.Questions().Import(ctx, records, run.ID)
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d questions, %d duplicates skipped (run %s)\n",
			added, dups, run.UID)
		return nil
	},
}

var bankResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every banked question",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("refusing to delete the bank without --force")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openBank(cmd, cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.Questions().Reset(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d questions\n", n)
		return nil
	},
}

func init() {
	bankListCmd.Flags().IntP("limit", "n", 20, "Number of questions to show")
	bankListCmd.Flags().String("shape", "", "Filter by shape")
	bankListCmd.Flags().String("tier", "", "Filter by difficulty tier")
	bankListCmd.Flags().String("kind", "", "Filter by question kind")

	bankResetCmd.Flags().Bool("force", false, "Actually delete")

	bankCmd.AddCommand(bankStatsCmd)
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankImportCmd)
	bankCmd.AddCommand(bankResetCmd)
}

// filterFromFlags builds a bank filter from --shape/--tier/--kind, validating
// names so typos fail fast instead of matching nothing.
func filterFromFlags(cmd *cobra.Command) (bank.Filter, error) {
	var f bank.Filter
	if v, _ := cmd.Flags().GetString("shape"); v != "" {
		if _, err := geometry.ParseShape(v); err != nil {
			return f, err
		}
		f.Shape = v
	}
	if v, _ := cmd.Flags().GetString("tier"); v != "" {
		if _, err := geometry.ParseTier(v); err != nil {
			return f, err
		}
		f.Difficulty = v
	}
	if v, _ := cmd.Flags().GetString("kind"); v != "" {
		if _, err := geometry.ParseKind(v); err != nil {
			return f, err
		}
		f.Kind = v
	}
	return f, nil
}

// printAccuracy prints per-facet practice accuracy on one line.
func printAccuracy(name string, accs map[string]bank.Accuracy) {
	if len(accs) == 0 {
		return
	}
	keys := make([]string, 0, len(accs))
	for k := range accs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("  by %s:", name)
	for _, k := range keys {
		acc := accs[k]
		fmt.Printf(" %s=%d/%d", k, acc.Correct, acc.Total)
	}
	fmt.Println()
}
