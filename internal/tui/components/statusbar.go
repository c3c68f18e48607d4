package components

import (
	"strings"

	"github.com/theirongolddev/waterlog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar holds what the bottom bar shows.
type StatusBar struct {
	Message     string // transient feedback, e.g. "Logged #12"
	IsError     bool
	Source      string // database path or "memory"
	Refreshing  bool
	AutoRefresh bool
}

// RenderStatusBar renders the bottom status bar at the given width.
func RenderStatusBar(width int, sb StatusBar) string {
	t := theme.Active

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	msgStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	if sb.IsError {
		msgStyle = msgStyle.Foreground(t.Red)
	}

	left := base.Render(" ") +
		keyStyle.Render("a") + base.Render(" add  ") +
		keyStyle.Render("?") + base.Render(" help  ") +
		keyStyle.Render("q") + base.Render(" quit")
	if sb.Message != "" {
		left += base.Render("   ") + msgStyle.Render(sb.Message)
	}

	var right strings.Builder
	if sb.Refreshing {
		right.WriteString("refreshing… ")
	} else if sb.AutoRefresh {
		right.WriteString("auto ")
	}
	if sb.Source != "" {
		right.WriteString(sb.Source)
		right.WriteString(" ")
	}
	rightStr := base.Render(right.String())

	padding := width - lipgloss.Width(left) - lipgloss.Width(rightStr)
	if padding < 0 {
		padding = 0
	}

	return left + base.Render(strings.Repeat(" ", padding)) + rightStr
}
