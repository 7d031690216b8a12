package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/geometriq/internal/config"
	"github.com/abhisek/geometriq/internal/llm"
	"github.com/abhisek/geometriq/internal/manifest"
	"github.com/abhisek/geometriq/internal/review"
)

var reviewCmd = &cobra.Command{
	Use:   "review <manifest>",
	Short: "Run an LLM quality review over a manifest",
	Long: `Send every question to an LLM reviewer and write a verdict report.

The reviewer checks language, option plausibility and internal consistency;
it is not asked to recompute answers, since the dimensions live in the
figures. A failed verdict makes the command exit non-zero so generation
pipelines can gate on it.`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

var reviewStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which LLM provider a review would use",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		printProviderTable()

		llmCfg, err := resolveLLMConfig(cmd, cfg)
		if err != nil {
			fmt.Println("\nSelected: none —", err)
			return nil
		}
		if err := llmCfg.Validate(); err != nil {
			fmt.Println("\nSelected:", llmCfg.Provider, "—", err)
			return nil
		}
		fmt.Printf("\nSelected: %s — %s\n", llmCfg.Provider, modelFor(llmCfg, llmCfg.Provider))
		return nil
	},
}

func init() {
	reviewCmd.Flags().String("report", "", "Report path (default review.json beside the manifest)")
	reviewCmd.Flags().String("provider", "", "LLM provider: anthropic, openai, gemini, openrouter or mock")
	reviewCmd.Flags().String("model", "", "Model override for the selected provider")

	reviewCmd.AddCommand(reviewStatusCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg, true)
	if err != nil {
		return err
	}
	defer logger.Sync()

	records, err := manifest.Load(args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%s holds no questions", args[0])
	}

	provider, err := buildProvider(cmd, cfg, logger)
	if err != nil {
		return err
	}

	svc := review.NewService(provider, review.Config{
		RequestsPerSecond: cfg.Review.RequestsPerSecond,
		Burst:             cfg.Review.Burst,
		Concurrency:       cfg.Review.Concurrency,
	}, logger)

	report, err := svc.Run(cmd.Context(), records)
	if err != nil {
		return err
	}

	reportPath, _ := cmd.Flags().GetString("report")
	if reportPath == "" {
		reportPath = filepath.Join(filepath.Dir(args[0]), "review.json")
	}
	if err := report.Save(reportPath); err != nil {
		return err
	}

	fmt.Printf("Reviewed %d questions with %s: %d passed, %d failed, %d errored\n",
		report.Total, report.Model, report.Passed, report.Failed, report.Errored)
	if report.EstCostUSD > 0 {
		fmt.Printf("Tokens: %d in / %d out (est. $%.4f)\n",
			report.InputTokens, report.OutputTokens, report.EstCostUSD)
	}
	fmt.Println("Report:", reportPath)

	for _, res := range report.Results {
		if res.Verdict == review.VerdictFail {
			fmt.Printf("  Q%d failed: %s\n", res.Index, strings.Join(res.Reasons, "; "))
		}
	}

	if report.Failed > 0 {
		return fmt.Errorf("%d of %d questions failed review", report.Failed, report.Total)
	}
	return nil
}

// buildProvider constructs the reviewer's LLM provider with retry and
// request logging wired in.
func buildProvider(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger) (llm.Provider, error) {
	llmCfg, err := resolveLLMConfig(cmd, cfg)
	if err != nil {
		return nil, err
	}
	if err := llmCfg.Validate(); err != nil {
		return nil, err
	}
	return llm.NewProvider(cmd.Context(), llmCfg, logger)
}

// resolveLLMConfig picks the provider in priority order: the --provider
// flag, then the config file (itself env-overridable), then API key
// discovery.
func resolveLLMConfig(cmd *cobra.Command, cfg *config.Config) (llm.Config, error) {
	chosen := cfg.LLM.Provider
	if v, _ := cmd.Flags().GetString("provider"); v != "" {
		chosen = v
	}

	var llmCfg llm.Config
	switch {
	case chosen != "":
		llmCfg = llm.ConfigFromEnv()
		llmCfg.Provider = chosen
	default:
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return llm.Config{}, fmt.Errorf("no LLM provider configured: set llm.provider or export an API key")
		}
		llmCfg = discovered
	}

	model := cfg.LLM.Model
	if v, _ := cmd.Flags().GetString("model"); v != "" {
		model = v
	}
	if model != "" {
		setModel(&llmCfg, model)
	}
	return llmCfg, nil
}

// setModel applies a model override to the selected provider.
func setModel(cfg *llm.Config, model string) {
	switch cfg.Provider {
	case "anthropic":
		cfg.Anthropic.Model = model
	case "openai":
		cfg.OpenAI.Model = model
	case "gemini":
		cfg.Gemini.Model = model
	case "openrouter":
		cfg.OpenRouter.Model = model
	}
}

// modelFor returns the model the named provider would use.
func modelFor(cfg llm.Config, provider string) string {
	switch provider {
	case "anthropic":
		return cfg.Anthropic.Model
	case "openai":
		return cfg.OpenAI.Model
	case "gemini":
		return cfg.Gemini.Model
	case "openrouter":
		return cfg.OpenRouter.Model
	case "mock":
		return "mock"
	default:
		return ""
	}
}

// printProviderTable lists each provider, its model and where its key would
// come from.
func printProviderTable() {
	llmCfg := llm.ConfigFromEnv()

	fmt.Printf("%-12s  %-30s  %s\n", "Provider", "Model", "Key")
	fmt.Println(strings.Repeat("─", 72))

	rows := []struct {
		name    string
		geomSet bool
		bareEnv string
	}{
		{"anthropic", llmCfg.Anthropic.APIKey != "", "ANTHROPIC_API_KEY"},
		{"openai", llmCfg.OpenAI.APIKey != "", "OPENAI_API_KEY"},
		{"gemini", llmCfg.Gemini.APIKey != "", "GEMINI_API_KEY"},
		{"openrouter", llmCfg.OpenRouter.APIKey != "", "OPENROUTER_API_KEY"},
	}
	for _, r := range rows {
		key := "(none)"
		switch {
		case r.geomSet:
			key = "GEOMETRIQ_" + strings.ToUpper(r.name) + "_API_KEY"
		case os.Getenv(r.bareEnv) != "":
			key = r.bareEnv
		}
		fmt.Printf("%-12s  %-30s  %s\n", r.name, modelFor(llmCfg, r.name), key)
	}
}
