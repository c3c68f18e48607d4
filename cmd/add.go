package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/waterlog/internal/cli"
	"github.com/theirongolddev/waterlog/internal/model"
	"github.com/theirongolddev/waterlog/internal/pipeline"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagAddActivity string
	flagAddNotes    string
	flagAddDate     string
)

var addCmd = &cobra.Command{
	Use:   "add <liters>",
	Short: "Log a water consumption record",
	Example: `  waterlog add 45 --activity shower
  waterlog add 12.5 -a dishes --notes "after dinner" --date 2026-10-18`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddActivity, "activity", "a", "",
		"Activity label ("+strings.Join(model.Activities, ", ")+", or any text)")
	addCmd.Flags().StringVar(&flagAddNotes, "notes", "", "Free-form notes")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Date as YYYY-MM-DD (default today)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	liters, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[0], model.ErrInvalidLiters)
	}

	today := model.Today()
	day, err := parseDateFlag("date", flagAddDate, today)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	rec, err := st.Append(model.Record{
		Date:     day,
		Liters:   liters,
		Activity: strings.TrimSpace(flagAddActivity),
		Notes:    strings.TrimSpace(flagAddNotes),
	})
	if errors.Is(err, model.ErrInvalidLiters) {
		return fmt.Errorf("invalid amount %q: %w", args[0], err)
	}
	if err != nil {
		return err
	}
	log.Debug().Int64("id", rec.ID).Float64("liters", rec.Liters).Str("date", model.DateKey(rec.Date)).Msg("record added")

	activity := rec.Activity
	if activity == "" {
		activity = pipeline.UnspecifiedActivity
	}
	fmt.Printf("  Logged #%d: %s (%s) on %s\n", rec.ID, cli.FormatLiters(rec.Liters), activity, model.DateKey(rec.Date))

	if !rec.Date.Equal(today) {
		return nil
	}

	todays, err := st.ListByDate(today)
	if err != nil {
		return err
	}
	threshold, err := st.Threshold()
	if err != nil {
		return err
	}
	alert := pipeline.CheckAlert(todays, today, threshold)
	if alert.Exceeded {
		fmt.Println(cli.RenderAlert(alert.Today, alert.Threshold))
	} else {
		info("  Today: %s of %s\n", cli.FormatLiters(alert.Today), cli.FormatLiters(alert.Threshold))
	}
	return nil
}
