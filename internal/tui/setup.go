package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/waterlog/internal/config"
	"github.com/theirongolddev/waterlog/internal/model"
	"github.com/theirongolddev/waterlog/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers collected by the setup form.
type SetupValues struct {
	Days      int
	Locale    string
	Theme     string
	Threshold string
}

// SetupValuesFrom seeds the form with the current config and threshold.
func SetupValuesFrom(cfg config.Config, threshold float64) SetupValues {
	return SetupValues{
		Days:      cfg.General.DefaultDays,
		Locale:    cfg.General.Locale,
		Theme:     cfg.Appearance.Theme,
		Threshold: strconv.FormatFloat(threshold, 'f', -1, 64),
	}
}

// NewSetupForm builds the first-run form. Answers are written into vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name+" ("+t.Description+")", t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to waterlog").
				Description("Track how much water you use each day.\nA few quick settings and you're done."),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Daily threshold (liters)").
				Description("You get an alert when a day's total goes above this.").
				Placeholder(strconv.FormatFloat(model.DefaultThreshold, 'f', -1, 64)).
				Value(&vals.Threshold).
				Validate(validateThresholdInput),
			huh.NewSelect[int]().
				Title("Default time window").
				Options(
					huh.NewOption("7 days", 7),
					huh.NewOption("30 days", 30),
				).
				Value(&vals.Days),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Day names").
				Options(
					huh.NewOption("English (Mon, Tue)", "en"),
					huh.NewOption("Español (lun, mar)", "es"),
				).
				Value(&vals.Locale),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
	).WithTheme(huh.ThemeDracula())
}

// ParseThreshold parses a liter threshold typed by the user.
// Empty input means the default.
func ParseThreshold(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.DefaultThreshold, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%q: %w", s, model.ErrInvalidThreshold)
	}
	return v, nil
}

func validateThresholdInput(s string) error {
	_, err := ParseThreshold(s)
	return err
}

// ApplySetup copies the answers into cfg and activates the chosen theme.
func ApplySetup(cfg *config.Config, vals SetupValues) {
	if vals.Days > 0 {
		cfg.General.DefaultDays = vals.Days
	}
	if vals.Locale != "" {
		cfg.General.Locale = vals.Locale
	}
	if vals.Theme != "" {
		cfg.Appearance.Theme = vals.Theme
		theme.SetActive(vals.Theme)
	}
}
