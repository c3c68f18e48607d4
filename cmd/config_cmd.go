package cmd

import (
	"fmt"

	"github.com/theirongolddev/waterlog/internal/cli"
	"github.com/theirongolddev/waterlog/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default days: %d\n", cfg.General.DefaultDays)
	fmt.Printf("    Locale:       %s\n", cfg.General.Locale)
	fmt.Printf("    Database:     %s\n", cfg.DBPath())
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Printf("    File:  %s (dashboard only)\n", cfg.LogPath())
	fmt.Println()

	fmt.Println("  [TUI]")
	fmt.Printf("    Auto refresh:     %v\n", cfg.TUI.AutoRefresh)
	fmt.Printf("    Refresh interval: %ds\n", cfg.TUI.RefreshIntervalSec)
	fmt.Println()

	if !flagMemory {
		st, err := openStore()
		if err == nil {
			defer st.Close()
			if v, err := st.Threshold(); err == nil {
				fmt.Println("  [Store]")
				fmt.Printf("    Threshold: %s\n", cli.FormatLiters(v))
				if n, err := st.Count(); err == nil {
					fmt.Printf("    Records:   %s\n", cli.FormatNumber(int64(n)))
				}
				fmt.Println()
			}
		}
	}

	fmt.Println("  Run `waterlog setup` to reconfigure.")
	return nil
}
