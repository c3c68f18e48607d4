package cmd

import (
	"fmt"

	"github.com/theirongolddev/waterlog/internal/cli"
	"github.com/theirongolddev/waterlog/internal/model"
	"github.com/theirongolddev/waterlog/internal/pipeline"
	"github.com/theirongolddev/waterlog/internal/tips"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Today's total and a summary of the last N days",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	today := model.Today()
	since, until := pipeline.Window(today, flagDays)

	// Previous period of the same length, for the delta column.
	prevSince, prevUntil := pipeline.Window(since.AddDate(0, 0, -1), flagDays)

	records, err := st.ListByDateRange(prevSince, until)
	if err != nil {
		return err
	}
	threshold, err := st.Threshold()
	if err != nil {
		return err
	}

	stats, err := pipeline.AggregateWith(records, since, until, labeler())
	if err != nil {
		return err
	}
	prevStats, err := pipeline.AggregateWith(records, prevSince, prevUntil, labeler())
	if err != nil {
		return err
	}
	alert := pipeline.CheckAlert(records, today, threshold)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("WATER USAGE  Last %dd", flagDays)))
	fmt.Println()

	if stats.DaysRecorded == 0 && alert.Today == 0 {
		fmt.Println("  No consumption recorded in this period.")
		fmt.Println("  Log some with `waterlog add <liters>`.")
		fmt.Println()
		return nil
	}

	status := "ok"
	if alert.Exceeded {
		status = "over threshold"
	}

	rows := [][]string{
		{"Today", cli.FormatLiters(alert.Today)},
		{"Threshold", cli.FormatLiters(threshold)},
		{"Status", status},
		{"---"},
		{"Total", cli.FormatLiters(stats.TotalLiters)},
		{"Days recorded", fmt.Sprintf("%d / %d", stats.DaysRecorded, len(stats.Days))},
		{"Max day", cli.FormatLiters(stats.MaxDaily)},
		{"Min day", cli.FormatLiters(stats.MinDaily)},
		{"---"},
	}

	avgStr := cli.FormatLiters(stats.AverageDaily) + "/day"
	if prevStats.AverageDaily > 0 {
		avgStr += fmt.Sprintf("  (%s vs prev %dd)",
			cli.FormatDelta(stats.AverageDaily, prevStats.AverageDaily), flagDays)
	}
	rows = append(rows, []string{"Average", avgStr})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderThresholdBar(alert.Today, threshold, 40))
	if alert.Exceeded {
		fmt.Println(cli.RenderAlert(alert.Today, threshold))
	}

	trend := make([]float64, len(stats.Days))
	for i, d := range stats.Days {
		trend[i] = d.Liters
	}
	fmt.Printf("\n  Trend  %s\n", cli.RenderSparkline(trend))

	tip := tips.ForToday(alert.Today, nil)
	fmt.Printf("\n  Tip: %s\n  %s\n\n", tip.Title, tip.Message)

	return nil
}
