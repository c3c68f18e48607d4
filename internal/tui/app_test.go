package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/waterlog/internal/model"
	"github.com/theirongolddev/waterlog/internal/pipeline"
	"github.com/theirongolddev/waterlog/internal/store"
	"github.com/theirongolddev/waterlog/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)

func day(s string) time.Time {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// newLoadedApp builds an App over st and feeds it the initial load.
func newLoadedApp(t *testing.T, st store.Store) App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	a := NewApp(st, Options{Days: 7, Now: func() time.Time { return fixedNow }})
	m, _ := a.Update(tea.WindowSizeMsg{Width: 140, Height: 45})
	m, _ = m.Update(loadDataCmd(st)())
	return m.(App)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, a App, keys ...string) (App, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	var m tea.Model = a
	for _, k := range keys {
		m, cmd = m.Update(key(k))
	}
	return m.(App), cmd
}

func seed(t *testing.T, st store.Store, recs ...model.Record) {
	t.Helper()
	for _, r := range recs {
		_, err := st.Append(r)
		require.NoError(t, err)
	}
}

func TestAppLoadComputesToday(t *testing.T) {
	st := store.NewMemory()
	seed(t, st,
		model.Record{Date: day("2024-03-15"), Liters: 80, Activity: "shower"},
		model.Record{Date: day("2024-03-15"), Liters: 30, Activity: "dishes"},
		model.Record{Date: day("2024-03-14"), Liters: 200, Activity: "laundry"},
	)

	a := newLoadedApp(t, st)
	require.True(t, a.loaded)
	assert.Len(t, a.todays, 2)
	assert.InDelta(t, 110.0, a.alert.Today, 1e-9)
	assert.False(t, a.alert.Exceeded)
	assert.Len(t, a.report.Days, 7)
	assert.InDelta(t, 310.0, a.report.TotalLiters, 1e-9)
	assert.Equal(t, model.CategoryAcceptable, a.tip.Category)

	// Newest first.
	require.Len(t, a.history, 3)
	assert.Equal(t, int64(2), a.history[0].ID)
	assert.Equal(t, int64(3), a.history[2].ID)
}

func TestAppAlertDismissAndRearm(t *testing.T) {
	st := store.NewMemory()
	seed(t, st, model.Record{Date: day("2024-03-15"), Liters: 180, Activity: "shower"})

	a := newLoadedApp(t, st)
	require.True(t, a.alert.Exceeded)
	assert.Contains(t, a.View(), "Threshold exceeded")

	a, _ = press(t, a, "esc")
	assert.True(t, a.alertDismissed)
	assert.NotContains(t, a.View(), "Threshold exceeded")

	// A new record brings the banner back.
	m, cmd := a.Update(StoreDoneMsg{Note: "Logged #2", Added: true})
	a = m.(App)
	require.NotNil(t, cmd)
	assert.False(t, a.alertDismissed)
	assert.Equal(t, "Logged #2", a.status)
}

func TestAppWindowToggle(t *testing.T) {
	a := newLoadedApp(t, store.NewMemory())
	assert.Equal(t, pipeline.WeeklyDays, a.window)

	a, _ = press(t, a, "m")
	assert.Equal(t, pipeline.MonthlyDays, a.window)
	assert.Len(t, a.report.Days, pipeline.MonthlyDays)

	a, _ = press(t, a, "s", "tab")
	assert.Equal(t, components.TabStats, a.activeTab)
	assert.Equal(t, pipeline.WeeklyDays, a.window)
	assert.Len(t, a.report.Days, pipeline.WeeklyDays)
}

func TestAppTabKeys(t *testing.T) {
	a := newLoadedApp(t, store.NewMemory())

	for _, tc := range []struct {
		key  string
		want int
	}{
		{"s", components.TabStats},
		{"h", components.TabHistory},
		{"i", components.TabTips},
		{"x", components.TabSettings},
		{"t", components.TabToday},
	} {
		a, _ = press(t, a, tc.key)
		assert.Equal(t, tc.want, a.activeTab, "key %q", tc.key)
		assert.NotEmpty(t, a.View())
	}
}

func TestAppHistoryDelete(t *testing.T) {
	st := store.NewMemory()
	seed(t, st,
		model.Record{Date: day("2024-03-13"), Liters: 40},
		model.Record{Date: day("2024-03-14"), Liters: 50},
	)
	a := newLoadedApp(t, st)

	a, _ = press(t, a, "h", "d")
	assert.Equal(t, int64(2), a.histState.confirmID)
	assert.Contains(t, a.View(), "Delete record #2?")

	a, cmd := press(t, a, "y")
	assert.Zero(t, a.histState.confirmID)
	require.NotNil(t, cmd)

	done, ok := cmd().(StoreDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.Err)

	m, _ := a.Update(done)
	m, _ = m.Update(loadDataCmd(st)())
	a = m.(App)
	require.Len(t, a.history, 1)
	assert.Equal(t, int64(1), a.history[0].ID)
}

func TestAppHistoryDeleteCancel(t *testing.T) {
	st := store.NewMemory()
	seed(t, st, model.Record{Date: day("2024-03-15"), Liters: 40})
	a := newLoadedApp(t, st)

	a, _ = press(t, a, "h", "d", "n")
	assert.Zero(t, a.histState.confirmID)
	assert.Equal(t, "Delete cancelled", a.status)

	all, err := st.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAppHistoryCursorBounds(t *testing.T) {
	st := store.NewMemory()
	seed(t, st,
		model.Record{Date: day("2024-03-13"), Liters: 40},
		model.Record{Date: day("2024-03-14"), Liters: 50},
		model.Record{Date: day("2024-03-15"), Liters: 60},
	)
	a := newLoadedApp(t, st)

	a, _ = press(t, a, "h", "k")
	assert.Equal(t, 0, a.histState.cursor)
	a, _ = press(t, a, "j", "j", "j", "j")
	assert.Equal(t, 2, a.histState.cursor)
	a, _ = press(t, a, "g")
	assert.Equal(t, 0, a.histState.cursor)
	a, _ = press(t, a, "G")
	assert.Equal(t, 2, a.histState.cursor)
}

func TestAppTipsCategoryCycle(t *testing.T) {
	a := newLoadedApp(t, store.NewMemory())
	a, _ = press(t, a, "i")

	for i := 1; i <= len(tipCategories); i++ {
		a, _ = press(t, a, "c")
		assert.Equal(t, i%len(tipCategories), a.tipsState.category)
	}
	assert.Contains(t, a.View(), "Eco tips")
}

func TestAppAddForm(t *testing.T) {
	a := newLoadedApp(t, store.NewMemory())

	a, _ = press(t, a, "a")
	require.NotNil(t, a.addForm)
	require.NotNil(t, a.addVals)
	assert.Equal(t, "2024-03-15", a.addVals.Date)
	assert.Equal(t, model.Activities[0], a.addVals.Activity)

	a, _ = press(t, a, "esc")
	assert.Nil(t, a.addForm)
	assert.Equal(t, "Add cancelled", a.status)
}

func TestAddValuesToRecord(t *testing.T) {
	rec, err := addValues{Liters: " 12.5 ", Activity: "dishes", Notes: " after dinner ", Date: "2024-02-29"}.toRecord()
	require.NoError(t, err)
	assert.InDelta(t, 12.5, rec.Liters, 1e-9)
	assert.Equal(t, "dishes", rec.Activity)
	assert.Equal(t, "after dinner", rec.Notes)
	assert.True(t, rec.Date.Equal(day("2024-02-29")))

	_, err = addValues{Liters: "0", Date: "2024-02-29"}.toRecord()
	assert.ErrorIs(t, err, model.ErrInvalidLiters)

	_, err = addValues{Liters: "5", Date: "2024-02-30"}.toRecord()
	assert.Error(t, err)
}

func TestAppMidnightRollover(t *testing.T) {
	st := store.NewMemory()
	seed(t, st, model.Record{Date: day("2024-03-15"), Liters: 180})

	now := fixedNow
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	a := NewApp(st, Options{Days: 7, Now: func() time.Time { return now }})
	m, _ := a.Update(loadDataCmd(st)())
	a = m.(App)
	require.True(t, a.alert.Exceeded)

	now = fixedNow.Add(6 * time.Hour)
	m, _ = a.Update(tickMsg{})
	a = m.(App)
	assert.True(t, a.today.Equal(day("2024-03-16")))
	assert.False(t, a.alert.Exceeded)
	assert.Empty(t, a.todays)
}

func TestAppLoadError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	a := NewApp(store.NewMemory(), Options{Now: func() time.Time { return fixedNow }})
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = m.Update(DataLoadedMsg{Err: assert.AnError})
	a = m.(App)

	assert.True(t, a.loaded)
	assert.True(t, a.statusErr)
	assert.True(t, strings.Contains(a.View(), "Error"))
}

func TestParseThreshold(t *testing.T) {
	v, err := ParseThreshold("")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultThreshold, v)

	v, err = ParseThreshold(" 120.5 ")
	require.NoError(t, err)
	assert.InDelta(t, 120.5, v, 1e-9)

	for _, bad := range []string{"0", "-3", "abc"} {
		_, err := ParseThreshold(bad)
		assert.ErrorIs(t, err, model.ErrInvalidThreshold, bad)
	}
}
