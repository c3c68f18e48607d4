package cmd

import (
	"fmt"

	"github.com/theirongolddev/waterlog/internal/config"
	"github.com/theirongolddev/waterlog/internal/logging"
	"github.com/theirongolddev/waterlog/internal/tui"
	"github.com/theirongolddev/waterlog/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// Pick the palette for the real terminal before forcing TrueColor,
	// which keeps background fills from being stripped.
	theme.Active = theme.ForProfile(cfg.Appearance.Theme, termenv.ColorProfile())
	lipgloss.SetColorProfile(termenv.TrueColor)

	// Console logging would draw over the alt screen.
	level := logging.ParseLevel(cfg.Log.Level)
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	closer, err := logging.SetupFile(cfg.LogPath(), level)
	if err != nil {
		logging.Discard()
	} else {
		defer closer.Close()
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	app := tui.NewApp(st, tui.Options{
		Days:      flagDays,
		Labeler:   labeler(),
		NeedSetup: !config.Exists() && !flagMemory,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
