package cmd

import (
	"fmt"

	"github.com/theirongolddev/waterlog/internal/cli"
	"github.com/theirongolddev/waterlog/internal/model"
	"github.com/theirongolddev/waterlog/internal/pipeline"

	"github.com/spf13/cobra"
)

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "Consumption by activity",
	RunE:  runActivities,
}

func init() {
	rootCmd.AddCommand(activitiesCmd)
}

func runActivities(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	since, until := pipeline.Window(model.Today(), flagDays)
	records, err := st.ListByDateRange(since, until)
	if err != nil {
		return err
	}

	acts := pipeline.AggregateActivities(records)
	if len(acts) == 0 {
		fmt.Println("\n  No consumption recorded in this period.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ACTIVITIES  Last %dd", flagDays)))
	fmt.Println()

	rows := make([][]string, 0, len(acts))
	labelW := 0
	for _, as := range acts {
		rows = append(rows, []string{
			as.Activity,
			cli.FormatNumber(int64(as.Records)),
			cli.FormatLiters(as.Liters),
			fmt.Sprintf("%.1f%%", as.SharePercent),
		})
		if n := len([]rune(as.Activity)); n > labelW {
			labelW = n
		}
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Activity", "Records", "Liters", "Share"},
		Rows:    rows,
	}))
	fmt.Println()

	for _, as := range acts {
		fmt.Println(cli.RenderHorizontalBar(as.Activity, labelW, as.Liters, acts[0].Liters, 30))
	}
	fmt.Println()
	return nil
}
