package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/theirongolddev/waterlog/internal/cli"
	"github.com/theirongolddev/waterlog/internal/model"
	"github.com/theirongolddev/waterlog/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// addValues holds the answers of the add-record form.
type addValues struct {
	Liters   string
	Activity string
	Notes    string
	Date     string
}

func newAddForm(vals *addValues) *huh.Form {
	opts := make([]huh.Option[string], 0, len(model.Activities))
	for _, act := range model.Activities {
		opts = append(opts, huh.NewOption(cli.TitleCase(act), act))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Liters").
				Placeholder("e.g. 45 or 12.5").
				Value(&vals.Liters).
				Validate(func(s string) error {
					_, err := parseLiters(s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Activity").
				Options(opts...).
				Value(&vals.Activity),
			huh.NewInput().
				Title("Notes").
				Placeholder("optional").
				CharLimit(200).
				Value(&vals.Notes),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&vals.Date).
				Validate(func(s string) error {
					_, err := model.ParseDate(strings.TrimSpace(s))
					if err != nil {
						return errors.New("use YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithShowHelp(true).WithTheme(huh.ThemeDracula())
}

func parseLiters(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, model.ErrInvalidLiters
	}
	return v, nil
}

// toRecord converts validated form answers into a record for the store.
func (v addValues) toRecord() (model.Record, error) {
	liters, err := parseLiters(v.Liters)
	if err != nil {
		return model.Record{}, err
	}
	day, err := model.ParseDate(strings.TrimSpace(v.Date))
	if err != nil {
		return model.Record{}, err
	}
	return model.Record{
		Date:     day,
		Liters:   liters,
		Activity: strings.TrimSpace(v.Activity),
		Notes:    strings.TrimSpace(v.Notes),
	}, nil
}

func (a App) formWidth() int {
	w := a.contentWidth() - 6
	if w > 70 {
		w = 70
	}
	return w
}

func (a App) openAddForm() (tea.Model, tea.Cmd) {
	a.addVals = &addValues{
		Activity: model.Activities[0],
		Date:     model.DateKey(model.Day(a.now())),
	}
	a.addForm = newAddForm(a.addVals).WithWidth(a.formWidth())
	a.status = ""
	return a, a.addForm.Init()
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		a.addForm = nil
		a.setStatus("Add cancelled", false)
		return a, nil
	}

	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	switch a.addForm.State {
	case huh.StateCompleted:
		a.addForm = nil
		rec, err := a.addVals.toRecord()
		if err != nil {
			a.setStatus(err.Error(), true)
			return a, nil
		}
		return a, addRecordCmd(a.store, rec)
	case huh.StateAborted:
		a.addForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) renderAddForm(cw int) string {
	return components.ContentCard("Add record", a.addForm.View(), cw)
}
