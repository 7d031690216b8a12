package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/geometriq/internal/manifest"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest>",
	Short: "Validate a question manifest",
	Long: `Check a manifest against the question schema and the semantic rules:
five distinct options labelled A through E, the answer label assigned, and
catalogue shapes, tiers and kinds. Exits non-zero on the first violation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := manifest.Load(args[0])
		if err != nil {
			return err
		}
		if err := manifest.Validate(records); err != nil {
			return err
		}

		stats := manifest.Summarize(records)
		fmt.Printf("%s: %d questions, all valid\n", args[0], stats.Total)
		printBreakdown("difficulty", stats.ByDifficulty)
		printBreakdown("shape", stats.ByShape)
		printBreakdown("kind", stats.ByKind)
		return nil
	},
}

func printBreakdown(name string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("  by %s:", name)
	for _, k := range keys {
		fmt.Printf(" %s=%d", k, counts[k])
	}
	fmt.Println()
}
