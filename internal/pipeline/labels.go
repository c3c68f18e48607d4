package pipeline

import (
	"fmt"
	"strings"
	"time"
)

// Labeler formats the display labels attached to each DailyAggregate.
type Labeler interface {
	Weekday(day time.Time) string
	DateLabel(day time.Time) string
}

// weekdayTable is a Labeler backed by a fixed list of short weekday names,
// indexed by time.Weekday (Sunday first).
type weekdayTable [7]string

func (w weekdayTable) Weekday(day time.Time) string {
	return w[day.Weekday()]
}

func (w weekdayTable) DateLabel(day time.Time) string {
	return fmt.Sprintf("%d/%d", day.Day(), int(day.Month()))
}

// Built-in labelers.
var (
	English Labeler = weekdayTable{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	Spanish Labeler = weekdayTable{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}
)

// LabelerFor returns the labeler for a locale tag such as "es" or "en_US".
// Unknown locales fall back to English.
func LabelerFor(locale string) Labeler {
	tag := strings.ToLower(locale)
	if i := strings.IndexAny(tag, "_-."); i >= 0 {
		tag = tag[:i]
	}
	switch tag {
	case "es":
		return Spanish
	default:
		return English
	}
}
