// Package tui provides the interactive Bubble Tea dashboard for waterlog.
package tui

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/theirongolddev/waterlog/internal/config"
	"github.com/theirongolddev/waterlog/internal/model"
	"github.com/theirongolddev/waterlog/internal/pipeline"
	"github.com/theirongolddev/waterlog/internal/store"
	"github.com/theirongolddev/waterlog/internal/tips"
	"github.com/theirongolddev/waterlog/internal/tui/components"
	"github.com/theirongolddev/waterlog/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
)

// DataLoadedMsg is sent when records and settings have been read from the store.
type DataLoadedMsg struct {
	Records   []model.Record
	Threshold float64
	LoadTime  time.Duration
	Err       error
}

// StoreDoneMsg is sent when a write to the store finishes.
type StoreDoneMsg struct {
	Note  string
	Added bool // a record was appended; re-arms the alert banner
	Err   error
}

// Options configures a new App.
type Options struct {
	Days      int
	Labeler   pipeline.Labeler
	NeedSetup bool
	Now       func() time.Time // nil means time.Now
}

// App is the root Bubble Tea model.
type App struct {
	store  store.Store
	labels pipeline.Labeler
	now    func() time.Time
	rng    *rand.Rand

	// Data
	records   []model.Record
	threshold float64
	loaded    bool
	loadTime  time.Duration
	loadErr   error

	// Auto-refresh state
	autoRefresh     bool
	refreshInterval time.Duration
	lastRefresh     time.Time
	refreshing      bool

	// Derived from records for the current day and window
	today          time.Time
	alert          model.AlertState
	todays         []model.Record
	report         model.StatsReport
	prevReport     model.StatsReport
	activities     []model.ActivityStats
	history        []model.Record // newest first
	tip            model.Tip
	tipFor         float64 // today's total the tip was picked for
	alertDismissed bool

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	window    int // days shown on the Stats tab
	days      int // configured default window

	// Per-tab state
	histState historyState
	tipsState tipsState
	settings  settingsState

	// Add-record form
	addForm *huh.Form
	addVals *addValues // heap-allocated so the form's bindings survive model copies

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool

	// Status bar feedback
	status    string
	statusErr bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	// Scroll navigation
	scrollOverhead    = 10 // approximate header + status bar height for half-page calc
	minHalfPageScroll = 1
	minContentHeight  = 5
)

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("config unreadable, using defaults")
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model backed by st.
func NewApp(st store.Store, opts Options) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	cfg := loadConfigOrDefault()
	refreshInterval := time.Duration(cfg.TUI.RefreshIntervalSec) * time.Second
	if refreshInterval < 10*time.Second {
		refreshInterval = 30 * time.Second
	}

	days := opts.Days
	if days < 1 {
		days = pipeline.WeeklyDays
	}
	labels := opts.Labeler
	if labels == nil {
		labels = pipeline.English
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return App{
		store:           st,
		labels:          labels,
		now:             now,
		rng:             rand.New(rand.NewSource(now().UnixNano())), //nolint:gosec // tip rotation only
		threshold:       model.DefaultThreshold,
		days:            days,
		window:          days,
		needSetup:       opts.NeedSetup,
		autoRefresh:     cfg.TUI.AutoRefresh,
		refreshInterval: refreshInterval,
		spinner:         sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.store),
		a.spinner.Tick,
		tickCmd(),
	)
}

// recompute rebuilds every derived view from the loaded records.
func (a *App) recompute() {
	a.today = model.Day(a.now())

	a.todays = nil
	for _, r := range a.records {
		if r.Date.Equal(a.today) {
			a.todays = append(a.todays, r)
		}
	}
	a.alert = pipeline.CheckAlert(a.todays, a.today, a.threshold)

	since, until := pipeline.Window(a.today, a.window)
	prevSince, prevUntil := pipeline.Window(since.AddDate(0, 0, -1), a.window)
	// Window never yields start > end, so these cannot fail.
	a.report, _ = pipeline.AggregateWith(a.records, since, until, a.labels)
	a.prevReport, _ = pipeline.AggregateWith(a.records, prevSince, prevUntil, a.labels)
	a.activities = pipeline.AggregateActivities(pipeline.FilterByDateRange(a.records, since, until))

	a.history = make([]model.Record, len(a.records))
	copy(a.history, a.records)
	sort.SliceStable(a.history, func(i, j int) bool {
		if !a.history[i].Date.Equal(a.history[j].Date) {
			return a.history[i].Date.After(a.history[j].Date)
		}
		return a.history[i].ID > a.history[j].ID
	})
	if a.histState.cursor >= len(a.history) {
		a.histState.cursor = len(a.history) - 1
	}
	if a.histState.cursor < 0 {
		a.histState.cursor = 0
	}

	if a.tip.Title == "" || a.tipFor != a.alert.Today {
		a.tip = tips.ForToday(a.alert.Today, a.rng)
		a.tipFor = a.alert.Today
	}
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(a.formWidth())
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.setupForm != nil || a.addForm != nil {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		return a.updateKey(msg)

	case DataLoadedMsg:
		a.refreshing = false
		a.lastRefresh = a.now()
		a.loadTime = msg.LoadTime
		if msg.Err != nil {
			log.Error().Err(msg.Err).Msg("loading records")
			a.loadErr = msg.Err
			a.loaded = true
			a.setStatus("Load failed: "+msg.Err.Error(), true)
			return a, nil
		}
		a.loadErr = nil
		a.records = msg.Records
		a.threshold = msg.Threshold
		first := !a.loaded
		a.loaded = true
		a.recompute()
		log.Debug().Int("records", len(a.records)).Dur("took", msg.LoadTime).Msg("records loaded")

		if first && a.needSetup {
			vals := SetupValuesFrom(loadConfigOrDefault(), a.threshold)
			a.setupVals = &vals
			a.setupForm = NewSetupForm(a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case StoreDoneMsg:
		if msg.Err != nil {
			log.Error().Err(msg.Err).Msg("store write")
			a.setStatus(msg.Err.Error(), true)
			return a, nil
		}
		if msg.Added {
			a.alertDismissed = false
		}
		a.setStatus(msg.Note, false)
		a.refreshing = true
		return a, loadDataCmd(a.store)

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd()}
		if !a.loaded {
			return a, tea.Batch(cmds...)
		}

		// Midnight rollover: today's alert and windows move with the date.
		if !model.Day(a.now()).Equal(a.today) {
			a.alertDismissed = false
			a.recompute()
		}

		if a.autoRefresh && !a.refreshing && a.now().Sub(a.lastRefresh) >= a.refreshInterval {
			a.refreshing = true
			cmds = append(cmds, loadDataCmd(a.store))
		}
		return a, tea.Batch(cmds...)
	}

	// Forward unhandled messages to an open form (cursor blinks, etc.)
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.loaded {
		return a, nil
	}

	// Open forms intercept all keys
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}

	// Settings tab has its own keybindings (text input)
	if a.activeTab == components.TabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	// Pending delete confirmation
	if a.histState.confirmID != 0 {
		return a.updateDeleteConfirm(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Any other key clears stale feedback.
	a.status = ""

	switch a.activeTab {
	case components.TabToday:
		switch key {
		case "esc", "enter":
			if a.alert.Exceeded && !a.alertDismissed {
				a.alertDismissed = true
				return a, nil
			}
		case "n":
			a.tip = tips.Random(a.rng)
			return a, nil
		}

	case components.TabStats:
		if key == "tab" {
			if a.window == pipeline.WeeklyDays {
				a.window = pipeline.MonthlyDays
			} else {
				a.window = pipeline.WeeklyDays
			}
			a.recompute()
			return a, nil
		}

	case components.TabHistory:
		if m, cmd, ok := a.updateHistoryKey(key); ok {
			return m, cmd
		}

	case components.TabTips:
		if m, cmd, ok := a.updateTipsKey(key); ok {
			return m, cmd
		}

	case components.TabSettings:
		switch key {
		case "j", "down":
			if a.settings.cursor < settingsFieldCount-1 {
				a.settings.cursor++
			}
			return a, nil
		case "k", "up":
			if a.settings.cursor > 0 {
				a.settings.cursor--
			}
			return a, nil
		case "enter":
			return a.settingsStartEdit()
		}
	}

	switch key {
	case "q":
		return a, tea.Quit

	case "a", "+":
		return a.openAddForm()

	case "w":
		a.window = pipeline.WeeklyDays
		a.recompute()
		return a, nil

	case "m":
		a.window = pipeline.MonthlyDays
		a.recompute()
		return a, nil

	case "T":
		a.cycleTheme()
		return a, nil

	case "r":
		if !a.refreshing {
			a.refreshing = true
			return a, loadDataCmd(a.store)
		}
		return a, nil

	case "R":
		a.autoRefresh = !a.autoRefresh
		cfg := loadConfigOrDefault()
		cfg.TUI.AutoRefresh = a.autoRefresh
		if err := config.Save(cfg); err != nil {
			a.setStatus("Could not save config: "+err.Error(), true)
		}
		return a, nil

	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil

	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if runes := []rune(key); len(runes) == 1 {
		if idx := components.TabIdxByKey(runes[0]); idx >= 0 {
			a.activeTab = idx
		}
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == components.TabHistory && a.histState.cursor > 0 {
			a.histState.cursor--
		}
		return a, nil

	case tea.MouseButtonWheelDown:
		if a.activeTab == components.TabHistory && a.histState.cursor < len(a.history)-1 {
			a.histState.cursor++
		}
		return a, nil

	case tea.MouseButtonLeft:
		// Tab bar is the first line
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.setupForm = nil
		a.needSetup = false
		return a, a.saveSetup()
	case huh.StateAborted:
		a.setupForm = nil
		a.needSetup = false
		return a, nil
	}

	return a, cmd
}

// saveSetup writes the setup answers to the config file and the store.
func (a *App) saveSetup() tea.Cmd {
	cfg := loadConfigOrDefault()
	ApplySetup(&cfg, *a.setupVals)
	if err := config.Save(cfg); err != nil {
		a.setStatus("Could not save config: "+err.Error(), true)
	}
	a.days = cfg.General.DefaultDays
	a.window = a.days
	a.labels = pipeline.LabelerFor(cfg.General.Locale)
	a.recompute()

	v, err := ParseThreshold(a.setupVals.Threshold)
	if err != nil {
		a.setStatus(err.Error(), true)
		return nil
	}
	return setThresholdCmd(a.store, v)
}

func (a *App) cycleTheme() {
	idx := 0
	for i, t := range theme.All {
		if t.Name == theme.Active.Name {
			idx = i
			break
		}
	}
	next := theme.All[(idx+1)%len(theme.All)]
	theme.SetActive(next.Name)
	a.spinner.Style = lipgloss.NewStyle().Foreground(next.Accent).Background(next.Surface)

	cfg := loadConfigOrDefault()
	cfg.Appearance.Theme = next.Name
	if err := config.Save(cfg); err != nil {
		a.setStatus("Could not save config: "+err.Error(), true)
		return
	}
	a.setStatus("Theme: "+next.Name, false)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  waterlog needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ waterlog"))
	b.WriteString(subtitleStyle.Render(" · Water Consumption"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading records..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"t s h i x", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Move in lists"},
			{"g G", "First / last record"},
		}},
		{"Records", []struct{ key, desc string }{
			{"a", "Add a record"},
			{"d", "Delete selected record (History)"},
			{"w m", "Weekly / monthly window"},
			{"Tab", "Toggle window (Stats)"},
			{"Esc", "Dismiss alert (Today)"},
		}},
		{"Other", []struct{ key, desc string }{
			{"n", "Another tip"},
			{"c", "Cycle tip category (Tips)"},
			{"T", "Next color theme"},
			{"r", "Reload from disk"},
			{"R", "Toggle auto-refresh"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	source := "memory"
	if db, ok := a.store.(*store.DB); ok {
		source = db.Path()
	}
	statusBar := components.RenderStatusBar(w, components.StatusBar{
		Message:     a.status,
		IsError:     a.statusErr,
		Source:      source,
		Refreshing:  a.refreshing,
		AutoRefresh: a.autoRefresh,
	})

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch {
	case a.addForm != nil:
		content = a.renderAddForm(cw)
	case a.loadErr != nil:
		content = components.ContentCard("Error", a.loadErr.Error(), cw)
	default:
		switch a.activeTab {
		case components.TabToday:
			content = a.renderTodayTab(cw)
		case components.TabStats:
			content = a.renderStatsTab(cw)
		case components.TabHistory:
			content = a.renderHistoryTab(cw, contentH)
		case components.TabTips:
			content = a.renderTipsTab(cw)
		case components.TabSettings:
			content = a.renderSettingsTab(cw)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Commands ───────────────────────────────────────────────────

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// loadDataCmd reads every record and the threshold in the background.
func loadDataCmd(st store.Store) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		records, err := st.ListAll()
		if err != nil {
			return DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
		}
		threshold, err := st.Threshold()
		if err != nil {
			return DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
		}
		return DataLoadedMsg{
			Records:   records,
			Threshold: threshold,
			LoadTime:  time.Since(start),
		}
	}
}

func addRecordCmd(st store.Store, r model.Record) tea.Cmd {
	return func() tea.Msg {
		rec, err := st.Append(r)
		if err != nil {
			return StoreDoneMsg{Err: fmt.Errorf("adding record: %w", err)}
		}
		log.Debug().Int64("id", rec.ID).Float64("liters", rec.Liters).Msg("record added")
		return StoreDoneMsg{
			Note:  fmt.Sprintf("Logged #%d: %.1f L on %s", rec.ID, rec.Liters, model.DateKey(rec.Date)),
			Added: true,
		}
	}
}

func deleteRecordCmd(st store.Store, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := st.Delete(id); err != nil {
			return StoreDoneMsg{Err: fmt.Errorf("deleting #%d: %w", id, err)}
		}
		log.Debug().Int64("id", id).Msg("record deleted")
		return StoreDoneMsg{Note: fmt.Sprintf("Deleted #%d", id)}
	}
}

func setThresholdCmd(st store.Store, v float64) tea.Cmd {
	return func() tea.Msg {
		if err := st.SetThreshold(v); err != nil {
			return StoreDoneMsg{Err: fmt.Errorf("setting threshold: %w", err)}
		}
		log.Debug().Float64("threshold", v).Msg("threshold updated")
		return StoreDoneMsg{Note: fmt.Sprintf("Threshold set to %.1f L", v)}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes use the same width rules as RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
