package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/geometriq/internal/bank"
	"github.com/abhisek/geometriq/internal/config"
	"github.com/abhisek/geometriq/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "geometriq",
	Short: "Geometry question generator for exam practice",
	Long: "Geometriq generates multiple-choice geometry questions with rendered figures,\n" +
		"banks them in SQLite, and turns them into worksheets, flashcards and a\n" +
		"terminal practice mode.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the question bank database (overrides GEOMETRIQ_DB)")
	rootCmd.PersistentFlags().String("config", "", "Directory holding geometriq.yaml")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-file", "", "Rotating JSON log file")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(worksheetCmd)
	rootCmd.AddCommand(flashcardsCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads geometriq.yaml from the --config directory, falling back
// to the working directory.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dir, _ := cmd.Flags().GetString("config")
	return config.Load(dir)
}

// newLogger builds the command's logger. Flags override the config file;
// console turns the stderr core off for commands that own the terminal.
func newLogger(cmd *cobra.Command, cfg *config.Config, console bool) (*zap.Logger, error) {
	opts := logging.Options{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Console: console && cfg.Logging.Console,
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		opts.Level = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		opts.File = v
	}
	return logging.New(opts)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then the config file, then the default per-user location.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, bank.EnsureDir(p)
	}
	if cfg.DB.Path != "" {
		return cfg.DB.Path, bank.EnsureDir(cfg.DB.Path)
	}
	return bank.DefaultDBPath()
}

// openBank opens the question bank for a command.
func openBank(cmd *cobra.Command, cfg *config.Config) (*bank.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, err
	}
	return bank.Open(dbPath)
}
