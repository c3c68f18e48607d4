package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/waterlog/internal/cli"
	"github.com/theirongolddev/waterlog/internal/model"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var thresholdCmd = &cobra.Command{
	Use:   "threshold [liters]",
	Short: "Show or set the daily liter threshold",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runThreshold,
}

func init() {
	rootCmd.AddCommand(thresholdCmd)
}

func runThreshold(_ *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if len(args) == 0 {
		v, err := st.Threshold()
		if err != nil {
			return err
		}
		fmt.Printf("  Daily threshold: %s\n", cli.FormatLiters(v))
		return nil
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
	if err != nil {
		return fmt.Errorf("invalid threshold %q: %w", args[0], model.ErrInvalidThreshold)
	}
	if err := st.SetThreshold(v); err != nil {
		return fmt.Errorf("invalid threshold %q: %w", args[0], err)
	}
	log.Debug().Float64("threshold", v).Msg("threshold updated")
	fmt.Printf("  Daily threshold set to %s\n", cli.FormatLiters(v))
	return nil
}
