package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/waterlog/internal/cli"
	"github.com/theirongolddev/waterlog/internal/model"
	"github.com/theirongolddev/waterlog/internal/tui/components"
	"github.com/theirongolddev/waterlog/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// historyState holds the History tab state.
type historyState struct {
	cursor    int
	offset    int   // scroll offset for the list
	confirmID int64 // record awaiting delete confirmation, 0 if none
}

// updateHistoryKey handles History tab keys. ok is false when the key
// should fall through to the global bindings.
func (a App) updateHistoryKey(key string) (m tea.Model, cmd tea.Cmd, ok bool) {
	n := len(a.history)
	switch key {
	case "j", "down":
		if a.histState.cursor < n-1 {
			a.histState.cursor++
		}
	case "k", "up":
		if a.histState.cursor > 0 {
			a.histState.cursor--
		}
	case "g", "home":
		a.histState.cursor = 0
	case "G", "end":
		a.histState.cursor = max(0, n-1)
	case "ctrl+d":
		a.histState.cursor = min(max(0, n-1), a.histState.cursor+a.halfPage())
	case "ctrl+u":
		a.histState.cursor = max(0, a.histState.cursor-a.halfPage())
	case "d", "delete":
		if n == 0 {
			return a, nil, true
		}
		a.histState.confirmID = a.history[a.histState.cursor].ID
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) halfPage() int {
	half := (a.height - scrollOverhead) / 2
	if half < minHalfPageScroll {
		half = minHalfPageScroll
	}
	return half
}

func (a App) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := a.histState.confirmID
	a.histState.confirmID = 0
	switch msg.String() {
	case "y", "Y", "enter":
		return a, deleteRecordCmd(a.store, id)
	default:
		a.setStatus("Delete cancelled", false)
		return a, nil
	}
}

func (a App) renderHistoryTab(cw, h int) string {
	t := theme.Active
	hs := a.histState

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(a.history) == 0 {
		return components.ContentCard("History", mutedStyle.Render("No records yet. Press [a] to add one."), cw)
	}

	innerW := components.CardInnerWidth(cw)
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	overStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).Bold(true)

	// Day totals mark rows whose day went over the threshold.
	dayTotals := make(map[string]float64)
	for _, r := range a.history {
		dayTotals[model.DateKey(r.Date)] += r.Liters
	}

	const idW, dateW, dayW, litersW, actW = 6, 10, 4, 11, 12
	notesW := innerW - idW - dateW - dayW - litersW - actW - 5
	if notesW < 4 {
		notesW = 4
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %-*s %-*s %*s %-*s %s",
		idW, "ID", dateW, "Date", dayW, "Day", litersW, "Liters", actW, "Activity", "Notes")))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")

	visible := h - 8 // card border (2) + title (1) + header (2) + footer (3)
	if visible < 3 {
		visible = 3
	}
	offset := hs.offset
	if hs.cursor < offset {
		offset = hs.cursor
	}
	if hs.cursor >= offset+visible {
		offset = hs.cursor - visible + 1
	}
	end := min(offset+visible, len(a.history))

	for i := offset; i < end; i++ {
		r := a.history[i]
		line := fmt.Sprintf("%-*s %-*s %-*s %*s %-*s %s",
			idW, fmt.Sprintf("#%d", r.ID),
			dateW, model.DateKey(r.Date),
			dayW, a.labels.Weekday(r.Date),
			litersW, cli.FormatLiters(r.Liters),
			actW, truncStr(r.Activity, actW),
			truncStr(r.Notes, notesW))

		switch {
		case i == hs.cursor:
			body.WriteString(selectedStyle.Render(line))
			if pad := innerW - lipgloss.Width(line); pad > 0 {
				body.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		case dayTotals[model.DateKey(r.Date)] > a.threshold:
			body.WriteString(overStyle.Render(line))
		default:
			body.WriteString(rowStyle.Render(line))
		}
		body.WriteString("\n")
	}

	body.WriteString("\n")
	if hs.confirmID != 0 {
		body.WriteString(warnStyle.Render(fmt.Sprintf("Delete record #%d? [y] yes  [any key] no", hs.confirmID)))
	} else {
		body.WriteString(mutedStyle.Render(fmt.Sprintf("%d of %d  [j/k] move  [d] delete  [a] add",
			hs.cursor+1, len(a.history))))
	}

	return components.ContentCard("History", body.String(), cw)
}
