package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/waterlog/internal/cli"
	"github.com/theirongolddev/waterlog/internal/config"
	"github.com/theirongolddev/waterlog/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	threshold, err := st.Threshold()
	if err != nil {
		return err
	}

	vals := tui.SetupValuesFrom(cfg, threshold)
	if err := tui.NewSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return err
	}

	tui.ApplySetup(&cfg, vals)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	v, err := tui.ParseThreshold(vals.Threshold)
	if err != nil {
		return err
	}
	if err := st.SetThreshold(v); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Printf("  Daily threshold: %s\n", cli.FormatLiters(v))
	fmt.Println("  Run `waterlog setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
