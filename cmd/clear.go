package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/waterlog/internal/cli"
	"github.com/theirongolddev/waterlog/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var flagClearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every record and reset the threshold",
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&flagClearYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}

func runClear(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if !flagClearYes {
		count, err := st.Count()
		if err != nil {
			return err
		}
		confirmed := false
		err = huh.NewConfirm().
			Title(fmt.Sprintf("Delete all %d records?", count)).
			Description(fmt.Sprintf("The threshold goes back to %s. This cannot be undone.",
				cli.FormatLiters(model.DefaultThreshold))).
			Affirmative("Delete").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if errors.Is(err, huh.ErrUserAborted) {
			confirmed = false
		} else if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("  Nothing deleted.")
			return nil
		}
	}

	if err := st.ClearAll(); err != nil {
		return fmt.Errorf("clearing store: %w", err)
	}
	log.Info().Msg("store cleared")
	fmt.Println("  All records deleted.")
	return nil
}
