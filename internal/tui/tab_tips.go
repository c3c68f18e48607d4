package tui

import (
	"strings"

	"github.com/theirongolddev/waterlog/internal/cli"
	"github.com/theirongolddev/waterlog/internal/model"
	"github.com/theirongolddev/waterlog/internal/tips"
	"github.com/theirongolddev/waterlog/internal/tui/components"
	"github.com/theirongolddev/waterlog/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// tipsState holds the Tips tab state.
type tipsState struct {
	category int // index into tipCategories; 0 shows all
}

// tipCategories lists the catalog topics the Tips tab can filter by.
// The leading -1 stands for "all".
var tipCategories = func() []model.Category {
	out := []model.Category{-1}
	for _, c := range model.Categories() {
		if !c.IsAlert() && len(tips.ByCategory(c)) > 0 {
			out = append(out, c)
		}
	}
	return out
}()

func (a App) updateTipsKey(key string) (m tea.Model, cmd tea.Cmd, ok bool) {
	switch key {
	case "c":
		a.tipsState.category = (a.tipsState.category + 1) % len(tipCategories)
	case "n":
		a.tip = tips.Random(a.rng)
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) renderTipsTab(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	catStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	msgStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Width(innerW)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder

	// Consumption-based tip for today
	var today strings.Builder
	today.WriteString(titleStyle.Render(a.tip.Title))
	today.WriteString(catStyle.Render("  " + a.tip.Category.String()))
	today.WriteString("\n")
	today.WriteString(msgStyle.Render(a.tip.Message))
	b.WriteString(components.ContentCard("For you today", today.String(), cw))
	b.WriteString("\n")

	// Catalog
	list := tips.All()
	filter := "all"
	if c := tipCategories[a.tipsState.category]; c >= 0 {
		list = tips.ByCategory(c)
		filter = c.String()
	}

	var body strings.Builder
	for i, tip := range list {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(titleStyle.Render(tip.Title))
		body.WriteString(catStyle.Render("  " + tip.Category.String()))
		body.WriteString("\n")
		body.WriteString(msgStyle.Render(tip.Message))
		body.WriteString("\n")
	}
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render("[c] category: " + cli.TitleCase(filter) + "  [n] random tip"))

	b.WriteString(components.ContentCard("Eco tips", body.String(), cw))
	return b.String()
}
