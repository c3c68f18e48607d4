package pipeline

import (
	"time"

	"github.com/theirongolddev/waterlog/internal/model"
)

// ExceedsThreshold reports whether todayTotal is strictly above threshold.
// A total equal to the threshold does not raise the alert.
func ExceedsThreshold(todayTotal, threshold float64) bool {
	return todayTotal > threshold
}

// TodayTotal sums liters for records dated on today.
func TodayTotal(records []model.Record, today time.Time) float64 {
	day := model.Day(today)
	var total float64
	for _, r := range records {
		if model.Day(r.Date).Equal(day) {
			total += r.Liters
		}
	}
	return total
}

// CheckAlert combines TodayTotal and ExceedsThreshold.
func CheckAlert(records []model.Record, today time.Time, threshold float64) model.AlertState {
	total := TodayTotal(records, today)
	return model.AlertState{
		Today:     total,
		Threshold: threshold,
		Exceeded:  ExceedsThreshold(total, threshold),
	}
}
