package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/waterlog/internal/cli"
	"github.com/theirongolddev/waterlog/internal/model"
	"github.com/theirongolddev/waterlog/internal/pipeline"
	"github.com/theirongolddev/waterlog/internal/tips"

	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Today's total, threshold status and a tip",
	RunE:  runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	today := model.Today()
	records, err := st.ListByDate(today)
	if err != nil {
		return err
	}
	threshold, err := st.Threshold()
	if err != nil {
		return err
	}
	alert := pipeline.CheckAlert(records, today, threshold)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TODAY  %s %s", labeler().Weekday(today), model.DateKey(today))))
	fmt.Println()
	fmt.Printf("  Used       %s\n", cli.FormatLiters(alert.Today))
	fmt.Printf("  Threshold  %s\n", cli.FormatLiters(alert.Threshold))
	fmt.Printf("  %s\n", cli.RenderThresholdBar(alert.Today, alert.Threshold, 40))
	if alert.Exceeded {
		fmt.Println()
		fmt.Println(cli.RenderAlert(alert.Today, alert.Threshold))
	}

	if len(records) > 0 {
		rows := make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, []string{
				strconv.FormatInt(r.ID, 10),
				cli.FormatLiters(r.Liters),
				r.Activity,
				truncate(r.Notes, 30),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"ID", "Liters", "Activity", "Notes"},
			Rows:    rows,
		}))
	}

	tip := tips.ForToday(alert.Today, nil)
	fmt.Printf("\n  %s\n  %s\n\n", tip.Title, tip.Message)
	return nil
}
