package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/waterlog/internal/cli"
	"github.com/theirongolddev/waterlog/internal/model"
	"github.com/theirongolddev/waterlog/internal/tips"

	"github.com/spf13/cobra"
)

var (
	flagTipsCategory string
	flagTipsRandom   bool
)

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Water saving tips",
	RunE:  runTips,
}

func init() {
	names := make([]string, 0, 5)
	for _, c := range model.Categories() {
		if !c.IsAlert() && len(tips.ByCategory(c)) > 0 {
			names = append(names, c.String())
		}
	}
	tipsCmd.Flags().StringVarP(&flagTipsCategory, "category", "c", "", "Only tips in category ("+strings.Join(names, ", ")+")")
	tipsCmd.Flags().BoolVarP(&flagTipsRandom, "random", "r", false, "Show one random tip")
	rootCmd.AddCommand(tipsCmd)
}

func runTips(_ *cobra.Command, _ []string) error {
	if flagTipsRandom {
		printTip(tips.Random(nil))
		fmt.Println()
		return nil
	}

	list := tips.All()
	if flagTipsCategory != "" {
		c, err := model.ParseCategory(strings.ToLower(strings.TrimSpace(flagTipsCategory)))
		if err != nil {
			return err
		}
		list = tips.ByCategory(c)
	}

	if len(list) == 0 {
		fmt.Println("\n  No tips in that category.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("ECO TIPS"))
	for _, t := range list {
		printTip(t)
	}
	fmt.Println()
	return nil
}

func printTip(t model.Tip) {
	fmt.Printf("\n  %s [%s]\n  %s\n", t.Title, t.Category, t.Message)
}
