// Package model defines domain types for waterlog records and statistics.
package model

import (
	"errors"
	"time"
)

// DateLayout is the serialized form of a calendar day.
const DateLayout = "2006-01-02"

// DefaultThreshold is the daily liter limit used until the user sets one.
const DefaultThreshold = 150.0

var (
	// ErrInvalidRange is returned when a date range has start after end.
	ErrInvalidRange = errors.New("invalid date range: start is after end")
	// ErrInvalidLiters is returned for non-positive or non-finite liter values.
	ErrInvalidLiters = errors.New("liters must be a positive number")
	// ErrInvalidThreshold is returned for non-positive or non-finite thresholds.
	ErrInvalidThreshold = errors.New("threshold must be a positive number")
)

// Record is one logged water-use event.
type Record struct {
	ID       int64
	Date     time.Time
	Liters   float64
	Activity string
	Notes    string
}

// Day truncates t to its calendar day at midnight UTC.
// The wall-clock date of t is kept regardless of its location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current local calendar day.
func Today() time.Time {
	return Day(time.Now())
}

// ParseDate parses a YYYY-MM-DD string into a calendar day.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DateKey formats a calendar day as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the number of calendar days in [start, end].
// Days are UTC midnights, so the Unix difference is a whole number of days.
func DaysBetween(start, end time.Time) int {
	s, e := Day(start), Day(end)
	if e.Before(s) {
		return 0
	}
	return int((e.Unix()-s.Unix())/secondsPerDay) + 1
}

const secondsPerDay = 24 * 60 * 60

// Activities are the suggested activity labels offered by the add forms.
// Any other free-text label is also accepted.
var Activities = []string{
	"shower",
	"laundry",
	"dishes",
	"watering",
	"cleaning",
	"cooking",
	"other",
}
