// Package pipeline turns consumption records into statistics and alerts.
package pipeline

import (
	"sort"
	"strings"
	"time"

	"github.com/theirongolddev/waterlog/internal/model"
)

// Window sizes used by the dashboard and the stats command.
const (
	WeeklyDays  = 7
	MonthlyDays = 30
)

// Window returns the inclusive range of n calendar days ending on today.
func Window(today time.Time, n int) (start, end time.Time) {
	if n < 1 {
		n = 1
	}
	end = model.Day(today)
	start = end.AddDate(0, 0, -(n - 1))
	return start, end
}

// Aggregate computes a StatsReport over [start, end] using English day labels.
func Aggregate(records []model.Record, start, end time.Time) (model.StatsReport, error) {
	return AggregateWith(records, start, end, English)
}

// AggregateWith computes a StatsReport over [start, end] inclusive.
// Records dated outside the range are ignored. Every calendar day in the
// range gets one entry in Days, zero when nothing was logged that day.
func AggregateWith(records []model.Record, start, end time.Time, labels Labeler) (model.StatsReport, error) {
	start, end = model.Day(start), model.Day(end)
	if start.After(end) {
		return model.StatsReport{}, model.ErrInvalidRange
	}
	if labels == nil {
		labels = English
	}

	dayTotals := make(map[string]float64)
	for _, r := range records {
		d := model.Day(r.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		dayTotals[model.DateKey(d)] += r.Liters
	}

	report := model.StatsReport{
		Start:        start,
		End:          end,
		DaysRecorded: len(dayTotals),
	}

	first := true
	for _, total := range dayTotals {
		if first || total > report.MaxDaily {
			report.MaxDaily = total
		}
		if first || total < report.MinDaily {
			report.MinDaily = total
		}
		first = false
	}

	// Sum in date order rather than map order so repeated calls produce
	// bit-identical totals.
	report.Days = make([]model.DailyAggregate, 0, model.DaysBetween(start, end))
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		liters := dayTotals[model.DateKey(day)]
		report.TotalLiters += liters
		report.Days = append(report.Days, model.DailyAggregate{
			Date:      day,
			DayLabel:  labels.Weekday(day),
			DateLabel: labels.DateLabel(day),
			Liters:    liters,
		})
	}
	if report.DaysRecorded > 0 {
		report.AverageDaily = report.TotalLiters / float64(report.DaysRecorded)
	}

	return report, nil
}

// AggregateActivities computes liters and record counts per activity label,
// sorted by liters descending.
func AggregateActivities(records []model.Record) []model.ActivityStats {
	actMap := make(map[string]*model.ActivityStats)
	var total float64

	for _, r := range records {
		label := strings.TrimSpace(r.Activity)
		if label == "" {
			label = UnspecifiedActivity
		}
		as, ok := actMap[label]
		if !ok {
			as = &model.ActivityStats{Activity: label}
			actMap[label] = as
		}
		as.Records++
		as.Liters += r.Liters
		total += r.Liters
	}

	acts := make([]model.ActivityStats, 0, len(actMap))
	for _, as := range actMap {
		if total > 0 {
			as.SharePercent = as.Liters / total * 100
		}
		acts = append(acts, *as)
	}
	sort.Slice(acts, func(i, j int) bool {
		if acts[i].Liters != acts[j].Liters {
			return acts[i].Liters > acts[j].Liters
		}
		return acts[i].Activity < acts[j].Activity
	})
	return acts
}

// UnspecifiedActivity labels records logged without an activity.
const UnspecifiedActivity = "unspecified"

// FilterByDateRange returns records dated within [start, end] inclusive.
func FilterByDateRange(records []model.Record, start, end time.Time) []model.Record {
	start, end = model.Day(start), model.Day(end)
	var result []model.Record
	for _, r := range records {
		d := model.Day(r.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		result = append(result, r)
	}
	return result
}

// FilterByActivity returns records whose activity contains the substring.
func FilterByActivity(records []model.Record, activity string) []model.Record {
	if activity == "" {
		return records
	}
	var result []model.Record
	for _, r := range records {
		if containsIgnoreCase(r.Activity, activity) {
			result = append(result, r)
		}
	}
	return result
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
