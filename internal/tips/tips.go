// Package tips provides the static eco-tip catalog and consumption-based tips.
package tips

import (
	"fmt"
	"math/rand"

	"github.com/theirongolddev/waterlog/internal/model"
)

// Consumption buckets, in liters per day. Each bound is exclusive-lower:
// a value equal to a bound falls into the bucket below it.
const (
	HighAlertAbove     = 200.0
	ModerateAlertAbove = 150.0
	AcceptableAbove    = 100.0
)

var catalog = []model.Tip{
	{
		Title:    "Turn off the tap",
		Message:  "Turn off the tap while brushing your teeth. You can save up to 12 liters per minute.",
		Category: model.CategoryGeneral,
	},
	{
		Title:    "Short showers",
		Message:  "Keep showers to 5 minutes. A 10 minute shower uses roughly 200 liters.",
		Category: model.CategoryShower,
	},
	{
		Title:    "Reuse water",
		Message:  "Reuse the water from rinsing vegetables to water your plants.",
		Category: model.CategoryKitchen,
	},
	{
		Title:    "Fix leaks",
		Message:  "A leak of one drop per second can waste more than 30 liters a day.",
		Category: model.CategoryGeneral,
	},
	{
		Title:    "Full loads only",
		Message:  "Run the washing machine only when it is full. You can save up to 80 liters per load.",
		Category: model.CategoryWashing,
	},
	{
		Title:    "Water at dusk",
		Message:  "Water plants at dusk or dawn to avoid excessive evaporation.",
		Category: model.CategoryGarden,
	},
	{
		Title:    "Install flow reducers",
		Message:  "Flow reducers on taps and showers can cut consumption by up to 50%.",
		Category: model.CategoryGeneral,
	},
	{
		Title:    "Wash produce in a bowl",
		Message:  "Wash fruit and vegetables in a bowl instead of under a running tap.",
		Category: model.CategoryKitchen,
	},
	{
		Title:    "Use the dishwasher well",
		Message:  "A dishwasher uses less water than washing by hand, but only run it when it is full.",
		Category: model.CategoryKitchen,
	},
	{
		Title:    "Collect rainwater",
		Message:  "Set up a rainwater collection system to water the garden.",
		Category: model.CategoryGarden,
	},
}

// All returns a copy of the full tip catalog.
func All() []model.Tip {
	out := make([]model.Tip, len(catalog))
	copy(out, catalog)
	return out
}

// ByCategory returns the catalog tips in category c.
func ByCategory(c model.Category) []model.Tip {
	var out []model.Tip
	for _, t := range catalog {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// Random picks one catalog tip. A nil r uses the package-level source.
func Random(r *rand.Rand) model.Tip {
	if r == nil {
		return catalog[rand.Intn(len(catalog))] //nolint:gosec // not security sensitive
	}
	return catalog[r.Intn(len(catalog))]
}

// ForConsumption returns the tip matching a day's total liters.
func ForConsumption(liters float64) model.Tip {
	switch {
	case liters > HighAlertAbove:
		return model.Tip{
			Title: "Very high consumption!",
			Message: fmt.Sprintf("Your consumption of %.1f liters is high. "+
				"Try shorter showers and turn off taps when you are not using them.", liters),
			Category: model.CategoryHighAlert,
		}
	case liters > ModerateAlertAbove:
		return model.Tip{
			Title: "Above average consumption",
			Message: fmt.Sprintf("At %.1f liters you are above the recommended consumption. "+
				"Small changes can add up to big savings.", liters),
			Category: model.CategoryModerateAlert,
		}
	case liters > AcceptableAbove:
		return model.Tip{
			Title:    "Good job",
			Message:  fmt.Sprintf("Your consumption of %.1f liters is in an acceptable range. Keep it up!", liters),
			Category: model.CategoryAcceptable,
		}
	default:
		return model.Tip{
			Title: "Excellent!",
			Message: fmt.Sprintf("Your consumption of %.1f liters is very efficient. "+
				"You are an example of responsible water use.", liters),
			Category: model.CategoryEfficient,
		}
	}
}

// ForToday returns the consumption tip when something was logged today,
// and a random catalog tip otherwise.
func ForToday(todayTotal float64, r *rand.Rand) model.Tip {
	if todayTotal > 0 {
		return ForConsumption(todayTotal)
	}
	return Random(r)
}
