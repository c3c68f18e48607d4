package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/waterlog/internal/cli"
	"github.com/theirongolddev/waterlog/internal/model"
	"github.com/theirongolddev/waterlog/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagStatsWeekly  bool
	flagStatsMonthly bool
	flagStatsFrom    string
	flagStatsTo      string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Daily statistics over a date window",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVarP(&flagStatsWeekly, "weekly", "w", false, "Last 7 days")
	statsCmd.Flags().BoolVarP(&flagStatsMonthly, "monthly", "m", false, "Last 30 days")
	statsCmd.Flags().StringVar(&flagStatsFrom, "from", "", "First day, YYYY-MM-DD")
	statsCmd.Flags().StringVar(&flagStatsTo, "to", "", "Last day, YYYY-MM-DD (default today)")
	statsCmd.MarkFlagsMutuallyExclusive("weekly", "monthly")
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	days := flagDays
	switch {
	case flagStatsWeekly:
		days = pipeline.WeeklyDays
	case flagStatsMonthly:
		days = pipeline.MonthlyDays
	}

	until, err := parseDateFlag("to", flagStatsTo, model.Today())
	if err != nil {
		return err
	}
	defSince, _ := pipeline.Window(until, days)
	since, err := parseDateFlag("from", flagStatsFrom, defSince)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.ListByDateRange(since, until)
	if errors.Is(err, model.ErrInvalidRange) {
		return fmt.Errorf("--from %s is after --to %s: %w", model.DateKey(since), model.DateKey(until), err)
	}
	if err != nil {
		return err
	}

	report, err := pipeline.AggregateWith(records, since, until, labeler())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("WATER STATS  %s to %s", model.DateKey(since), model.DateKey(until))))
	fmt.Println()

	if report.DaysRecorded == 0 {
		fmt.Println("  No consumption recorded in this period.")
		return nil
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total", cli.FormatLiters(report.TotalLiters)},
			{"Average/day", cli.FormatLiters(report.AverageDaily)},
			{"Max day", cli.FormatLiters(report.MaxDaily)},
			{"Min day", cli.FormatLiters(report.MinDaily)},
			{"Days recorded", fmt.Sprintf("%d / %d", report.DaysRecorded, len(report.Days))},
		},
	}))
	fmt.Println()

	labelW := 0
	for _, d := range report.Days {
		if w := len([]rune(d.DayLabel + " " + d.DateLabel)); w > labelW {
			labelW = w
		}
	}
	fmt.Println("  Daily")
	for _, d := range report.Days {
		fmt.Println(cli.RenderHorizontalBar(d.DayLabel+" "+d.DateLabel, labelW, d.Liters, report.MaxDaily, 40))
	}
	fmt.Println()
	return nil
}
