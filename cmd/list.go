package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/waterlog/internal/cli"
	"github.com/theirongolddev/waterlog/internal/model"
	"github.com/theirongolddev/waterlog/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagListFrom     string
	flagListTo       string
	flagListDate     string
	flagListActivity string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List consumption records",
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListFrom, "from", "", "First day, YYYY-MM-DD (default start of --days window)")
	listCmd.Flags().StringVar(&flagListTo, "to", "", "Last day, YYYY-MM-DD (default today)")
	listCmd.Flags().StringVar(&flagListDate, "date", "", "Only this day, YYYY-MM-DD")
	listCmd.Flags().StringVarP(&flagListActivity, "activity", "a", "", "Filter to activity (substring match)")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	defSince, defUntil := pipeline.Window(model.Today(), flagDays)
	since, err := parseDateFlag("from", flagListFrom, defSince)
	if err != nil {
		return err
	}
	until, err := parseDateFlag("to", flagListTo, defUntil)
	if err != nil {
		return err
	}
	if flagListDate != "" {
		day, err := parseDateFlag("date", flagListDate, defUntil)
		if err != nil {
			return err
		}
		since, until = day, day
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.ListByDateRange(since, until)
	if err != nil {
		return err
	}
	records = pipeline.FilterByActivity(records, flagListActivity)

	if len(records) == 0 {
		fmt.Printf("\n  No records between %s and %s.\n", model.DateKey(since), model.DateKey(until))
		return nil
	}

	lbl := labeler()
	var total float64
	rows := make([][]string, 0, len(records)+2)
	for _, r := range records {
		total += r.Liters
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			model.DateKey(r.Date),
			lbl.Weekday(r.Date),
			cli.FormatLiters(r.Liters),
			r.Activity,
			truncate(r.Notes, 30),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "", cli.FormatLiters(total), fmt.Sprintf("%d records", len(records)), ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Records  %s to %s", model.DateKey(since), model.DateKey(until)),
		Headers: []string{"ID", "Date", "Day", "Liters", "Activity", "Notes"},
		Rows:    rows,
	}))
	return nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
