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

func (a App) renderTodayTab(cw int) string {
	t := theme.Active
	alert := a.alert
	var b strings.Builder

	if alert.Exceeded && !a.alertDismissed {
		b.WriteString(components.AlertBanner(fmt.Sprintf(
			"Threshold exceeded: %s used today, limit is %s.  [Esc] dismiss",
			cli.FormatLiters(alert.Today), cli.FormatLiters(alert.Threshold)), cw))
		b.WriteString("\n")
	}

	// Row 1: metric cards
	remaining := alert.Threshold - alert.Today
	remainingLabel := "Remaining"
	if remaining < 0 {
		remainingLabel = "Over by"
		remaining = -remaining
	}

	todayTone := components.ToneGood
	switch {
	case alert.Exceeded:
		todayTone = components.ToneAlert
	case alert.Threshold > 0 && alert.Today/alert.Threshold >= 0.8:
		todayTone = components.ToneWarn
	}

	avgDelta := ""
	if a.report.AverageDaily > 0 {
		avgDelta = fmt.Sprintf("%s vs %dd avg", cli.FormatDelta(alert.Today, a.report.AverageDaily), a.window)
	}

	metrics := []components.Metric{
		{Label: "Today", Value: cli.FormatLiters(alert.Today), Delta: avgDelta, Tone: todayTone},
		{Label: "Threshold", Value: cli.FormatLiters(alert.Threshold)},
		{Label: remainingLabel, Value: cli.FormatLiters(remaining), Tone: todayTone},
		{Label: "Records", Value: cli.FormatNumber(int64(len(a.todays))), Delta: a.labels.Weekday(a.today) + " " + model.DateKey(a.today)},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: threshold bar
	innerW := components.CardInnerWidth(cw)
	barW := innerW - 16
	if barW < 10 {
		barW = 10
	}
	b.WriteString(components.ContentCard("Daily limit",
		components.ThresholdBar("Used", alert.Today, alert.Threshold, 10, barW), cw))
	b.WriteString("\n")

	// Row 3: today's records + tip
	halves := components.LayoutRow(cw, 2)
	listW := halves[0]
	if a.isCompactLayout() {
		listW = cw
	}
	recordsCard := components.ContentCard("Logged today", a.renderTodayRecords(components.CardInnerWidth(listW)), listW)

	tipW := halves[1]
	if a.isCompactLayout() {
		tipW = cw
	}
	tipTitleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	tipStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Width(components.CardInnerWidth(tipW))
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	tipBody := tipTitleStyle.Render(a.tip.Title) + "\n" +
		tipStyle.Render(a.tip.Message) + "\n\n" +
		hintStyle.Render("[n] another tip")
	tipCard := components.ContentCard("Tip", tipBody, tipW)

	if a.isCompactLayout() {
		b.WriteString(recordsCard)
		b.WriteString("\n")
		b.WriteString(tipCard)
	} else {
		b.WriteString(components.CardRow([]string{recordsCard, tipCard}))
	}

	return b.String()
}

func (a App) renderTodayRecords(innerW int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	idStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	litersStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	actStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface)

	if len(a.todays) == 0 {
		return mutedStyle.Render("Nothing logged yet. Press [a] to add a record.")
	}

	actW := innerW - 6 - 12 - 2
	if actW < 8 {
		actW = 8
	}

	var body strings.Builder
	for _, r := range a.todays {
		act := r.Activity
		if act == "" {
			act = pipeline.UnspecifiedActivity
		}
		if r.Notes != "" {
			act += " · " + r.Notes
		}
		fmt.Fprintf(&body, "%s %s %s\n",
			idStyle.Render(fmt.Sprintf("#%-4d", r.ID)),
			litersStyle.Render(fmt.Sprintf("%10s", cli.FormatLiters(r.Liters))),
			actStyle.Render(truncStr(act, actW)))
	}
	return strings.TrimRight(body.String(), "\n")
}
