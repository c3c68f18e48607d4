// Package cmd implements the waterlog CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/waterlog/internal/config"
	"github.com/theirongolddev/waterlog/internal/logging"
	"github.com/theirongolddev/waterlog/internal/model"
	"github.com/theirongolddev/waterlog/internal/pipeline"
	"github.com/theirongolddev/waterlog/internal/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagDays    int
	flagDBPath  string
	flagQuiet   bool
	flagVerbose bool
	flagMemory  bool
)

// cfg is loaded once per invocation by the root pre-run hook.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:               "waterlog",
	Short:             "Water consumption logger",
	Long:              "Log daily water use, track 7/30-day statistics, and get alerts when you go over your limit.",
	SilenceUsage:      true,
	PersistentPreRunE: setupRun,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", 0, "Time window in days (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Database file (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagMemory, "memory", false, "Use a throwaway in-memory store")
}

// setupRun loads .env and config, then configures logging. Flags win over
// config values.
func setupRun(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "  %s\n", err)
	}

	loaded, err := config.Load()
	if err != nil {
		// Keep going on defaults so a broken config never locks the user out.
		fmt.Fprintf(os.Stderr, "  Config error, using defaults: %s\n", err)
		loaded = config.DefaultConfig()
	}
	cfg = loaded

	level := logging.ParseLevel(cfg.Log.Level)
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	logging.SetupConsole(os.Stderr, level)

	if !cmd.Flags().Changed("days") || flagDays < 1 {
		flagDays = cfg.General.DefaultDays
	}
	log.Debug().Int("days", flagDays).Str("config", config.Path()).Msg("config loaded")
	return nil
}

// openStore returns the store selected by --memory, --db and the config.
func openStore() (store.Store, error) {
	if flagMemory {
		log.Debug().Msg("using in-memory store")
		return store.NewMemory(), nil
	}

	path := flagDBPath
	if path == "" {
		path = cfg.DBPath()
	}
	db, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	return db, nil
}

// labeler returns the day-name labeler for the configured locale.
func labeler() pipeline.Labeler {
	return pipeline.LabelerFor(cfg.General.Locale)
}

// parseDateFlag parses a YYYY-MM-DD flag value, returning def when empty.
func parseDateFlag(name, value string, def time.Time) (time.Time, error) {
	if value == "" {
		return def, nil
	}
	d, err := model.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: expected YYYY-MM-DD, got %q", name, value)
	}
	return d, nil
}

// info prints a user-facing message to stderr unless --quiet is set.
func info(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
