package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/waterlog/internal/cli"
	"github.com/theirongolddev/waterlog/internal/model"
	"github.com/theirongolddev/waterlog/internal/pipeline"
	"github.com/theirongolddev/waterlog/internal/tui/components"
	"github.com/theirongolddev/waterlog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderStatsTab(cw int) string {
	t := theme.Active
	rep := a.report
	prev := a.prevReport
	var b strings.Builder

	// Window selector
	onStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright).Bold(true)
	offStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pick := func(label string, days int) string {
		if a.window == days {
			return onStyle.Render(" " + label + " ")
		}
		return offStyle.Render(" " + label + " ")
	}
	rangeStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	selector := pick("[w] Weekly", pipeline.WeeklyDays) + offStyle.Render(" ") +
		pick("[m] Monthly", pipeline.MonthlyDays) +
		rangeStyle.Render(fmt.Sprintf("   %s to %s", model.DateKey(rep.Start), model.DateKey(rep.End)))
	b.WriteString(lipgloss.NewStyle().Background(t.Surface).Width(cw).Render(selector))
	b.WriteString("\n")

	// Row 1: metric cards
	totalDelta := ""
	if prev.TotalLiters > 0 {
		totalDelta = cli.FormatDelta(rep.TotalLiters, prev.TotalLiters) + " vs prev"
	}
	avgDelta := ""
	if prev.AverageDaily > 0 {
		avgDelta = cli.FormatDelta(rep.AverageDaily, prev.AverageDaily) + " vs prev"
	}
	maxTone := components.ToneNormal
	if rep.MaxDaily > a.threshold {
		maxTone = components.ToneAlert
	}

	metrics := []components.Metric{
		{Label: "Total", Value: cli.FormatLiters(rep.TotalLiters), Delta: totalDelta},
		{Label: "Average/day", Value: cli.FormatLiters(rep.AverageDaily), Delta: avgDelta},
		{Label: "Max day", Value: cli.FormatLiters(rep.MaxDaily), Tone: maxTone},
		{Label: "Min day", Value: cli.FormatLiters(rep.MinDaily)},
		{Label: "Days recorded", Value: fmt.Sprintf("%d / %d", rep.DaysRecorded, len(rep.Days))},
	}
	if a.isCompactLayout() {
		b.WriteString(components.MetricCardRow(metrics[:3], cw))
		b.WriteString("\n")
		b.WriteString(components.MetricCardRow(metrics[3:], cw))
	} else {
		b.WriteString(components.MetricCardRow(metrics, cw))
	}
	b.WriteString("\n")

	// Row 2: daily chart
	values := make([]float64, len(rep.Days))
	labels := make([]string, len(rep.Days))
	for i, d := range rep.Days {
		values[i] = d.Liters
		if a.window <= pipeline.WeeklyDays {
			labels[i] = d.DayLabel
		} else {
			labels[i] = d.DateLabel
		}
	}
	chartH := 10
	if a.isCompactLayout() {
		chartH = 7
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Daily liters (%dd)", a.window),
		components.BarChart(values, labels, a.threshold, components.CardInnerWidth(cw), chartH),
		cw,
	))
	b.WriteString("\n")

	// Row 3: activity split
	b.WriteString(components.ContentCard("By activity", a.renderActivityBars(components.CardInnerWidth(cw)), cw))

	return b.String()
}

func (a App) renderActivityBars(innerW int) string {
	t := theme.Active
	if len(a.activities) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render("No records in this window.")
	}

	colors := []lipgloss.Color{t.BlueBright, t.Cyan, t.Magenta, t.Yellow, t.Green}
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	numStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	nameW := 0
	for _, as := range a.activities {
		if n := len([]rune(as.Activity)); n > nameW {
			nameW = n
		}
	}
	if nameW > innerW/3 {
		nameW = innerW / 3
	}
	numW := 22 // "1,234.5 L  100%"
	barMax := innerW - nameW - numW - 2
	if barMax < 1 {
		barMax = 1
	}

	peak := a.activities[0].Liters
	var body strings.Builder
	for i, as := range a.activities {
		barLen := 0
		if peak > 0 {
			barLen = int(as.Liters / peak * float64(barMax))
		}
		bar := lipgloss.NewStyle().Foreground(colors[i%len(colors)]).Background(t.Surface).
			Render(strings.Repeat("█", barLen))
		fmt.Fprintf(&body, "%s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(as.Activity, nameW))),
			bar,
			numStyle.Render(fmt.Sprintf("%s  %.0f%%", cli.FormatLiters(as.Liters), as.SharePercent)))
	}
	return strings.TrimRight(body.String(), "\n")
}
