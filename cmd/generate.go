package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/geometriq/internal/bank"
	"github.com/abhisek/geometriq/internal/batch"
	"github.com/abhisek/geometriq/internal/blueprint"
	"github.com/abhisek/geometriq/internal/config"
	"github.com/abhisek/geometriq/internal/geometry"
	"github.com/abhisek/geometriq/internal/quizgen"
	"github.com/abhisek/geometriq/internal/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a batch of questions with figures",
	Long: `Generate multiple-choice geometry questions, render their figures as PNGs
and write a manifest describing the batch.

The mix flags pin every question to one shape, tier or kind; anything left
unpinned is drawn per question from the run's seed. For mixed runs, describe
the batch in a blueprint YAML instead and pass --blueprint.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("blueprint", "", "Blueprint YAML describing the run")
	generateCmd.Flags().Int("count", 10, "Number of questions to generate")
	generateCmd.Flags().Int64("seed", 0, "Base seed for a reproducible run")
	generateCmd.Flags().String("out", "", "Output directory for the manifest and images")
	generateCmd.Flags().String("shape", "", "Pin every question to one shape")
	generateCmd.Flags().String("tier", "", "Pin every question to one difficulty tier")
	generateCmd.Flags().String("kind", "", "Pin every question to one question kind")
	generateCmd.Flags().Int("workers", 0, "Worker pool size (0 picks a default)")
	generateCmd.Flags().Bool("bank", false, "Import the generated questions into the bank")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg, true)
	if err != nil {
		return err
	}
	defer logger.Sync()

	bp, err := generateBlueprint(cmd, cfg)
	if err != nil {
		return err
	}

	workers, _ := cmd.Flags().GetInt("workers")
	runner := batch.NewRunner(batch.Options{
		Generator:   quizgen.New(quizgen.DefaultConfig()),
		Renderer:    &render.PNG{Size: cfg.Render.ImageSize, LineWidth: 2},
		Logger:      logger,
		Concurrency: workers,
	})

	result, err := runner.Run(cmd.Context(), bp)
	if err != nil {
		return err
	}

	fmt.Printf("Generated %d questions in %s (seed %d)\n",
		len(result.Records), result.Elapsed.Round(time.Millisecond), result.Seed)
	if len(result.Skipped) > 0 {
		fmt.Printf("Skipped after retries: %v\n", result.Skipped)
	}
	fmt.Println("Manifest:", result.ManifestPath)

	if toBank, _ := cmd.Flags().GetBool("bank"); toBank {
		return importResult(cmd, cfg, result)
	}
	return nil
}

// importResult banks a finished run: the run row first so every imported
// question links back to it.
func importResult(cmd *cobra.Command, cfg *config.Config, result *batch.Result) error {
	s, err := openBank(cmd, cfg)
	if err != nil {
		return fmt.Errorf("open bank: %w", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	run, err := s.Runs().Record(ctx, bank.RunData{
		Seed:         result.Seed,
		Total:        len(result.Records),
		Skipped:      len(result.Skipped),
		ManifestPath: result.ManifestPath,
	})
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	added, dups, err := s.Questions().Import(ctx, result.Records, run.ID)
	if err != nil {
		return fmt.Errorf("import into bank: %w", err)
	}

	fmt.Printf("Bank: %d added, %d duplicates (run %s)\n", added, dups, run.UID)
	return nil
}

// generateBlueprint builds the run plan from --blueprint or from the mix
// flags. The two are mutually exclusive apart from --out.
func generateBlueprint(cmd *cobra.Command, cfg *config.Config) (*blueprint.Blueprint, error) {
	path, _ := cmd.Flags().GetString("blueprint")
	if path != "" {
		for _, f := range []string{"count", "seed", "shape", "tier", "kind"} {
			if cmd.Flags().Changed(f) {
				return nil, fmt.Errorf("--%s cannot be combined with --blueprint", f)
			}
		}
		bp, err := blueprint.NewLoader().LoadFile(path)
		if err != nil {
			return nil, err
		}
		if cmd.Flags().Changed("out") {
			bp.OutDir, _ = cmd.Flags().GetString("out")
		}
		return bp, nil
	}

	count, _ := cmd.Flags().GetInt("count")
	bp := &blueprint.Blueprint{
		Schema: blueprint.SchemaVersion,
		Count:  count,
		OutDir: outDir(cmd, cfg),
	}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		bp.Seed = &seed
	}

	shape, _ := cmd.Flags().GetString("shape")
	tier, _ := cmd.Flags().GetString("tier")
	kind, _ := cmd.Flags().GetString("kind")
	if shape != "" {
		if _, err := geometry.ParseShape(shape); err != nil {
			return nil, err
		}
	}
	if tier != "" {
		if _, err := geometry.ParseTier(tier); err != nil {
			return nil, err
		}
	}
	if kind != "" {
		if _, err := geometry.ParseKind(kind); err != nil {
			return nil, err
		}
	}
	if shape != "" || tier != "" || kind != "" {
		bp.Mix = []blueprint.Mix{{Shape: shape, Tier: tier, Kind: kind, Count: count}}
	}
	return bp, nil
}

// outDir picks the output directory: --out flag, then the config file.
func outDir(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("out") {
		dir, _ := cmd.Flags().GetString("out")
		return dir
	}
	return cfg.Output.Dir
}
