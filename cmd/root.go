package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dayne-app/dayne/internal/config"
	"github.com/dayne-app/dayne/internal/i18n"
	"github.com/dayne-app/dayne/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "dayne",
	Short: "Turn study material into flashcards and tests",
	Long:  "Dayne generates multiple-choice questions from your notes and lets you study them as flashcards or a graded test.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "SQLite path or postgres:// DSN (overrides DAYNE_DB env var)")
	rootCmd.PersistentFlags().String("lang", "", "Language for the UI and generated questions: kz or en (overrides DAYNE_LANGUAGE)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(uploadsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies the persistent flags.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.Load()
	if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
		cfg.Language = i18n.Parse(lang)
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.DB = db
	}
	return cfg
}

// resolveDBPath returns the database DSN using --db / DAYNE_DB, then the
// default path under the data directory.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DB != "" {
		if store.IsPostgres(cfg.DB) {
			return cfg.DB, nil
		}
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore opens the configured database.
func openStore(cfg *config.Config) (*store.Store, error) {
	dsn, err := resolveDBPath(cfg)
	if err != nil {
		return nil, err
	}
	return store.Open(dsn)
}
