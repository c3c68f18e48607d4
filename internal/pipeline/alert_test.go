package pipeline

import (
	"testing"

	"github.com/theirongolddev/waterlog/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestExceedsThreshold(t *testing.T) {
	tests := []struct {
		today, threshold float64
		want             bool
	}{
		{150.0, 150.0, false},
		{150.1, 150.0, true},
		{0, 150.0, false},
		{99.9, 100, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExceedsThreshold(tt.today, tt.threshold), "%v > %v", tt.today, tt.threshold)
	}
}

func TestTodayTotal(t *testing.T) {
	records := []model.Record{
		rec("2024-03-10", 50, "shower"),
		rec("2024-03-10", 30.5, "dishes"),
		rec("2024-03-11", 500, "laundry"),
	}
	assert.Equal(t, 80.5, TodayTotal(records, d("2024-03-10")))
	assert.Zero(t, TodayTotal(records, d("2024-03-12")))
	assert.Zero(t, TodayTotal(nil, d("2024-03-12")))
}

func TestCheckAlert(t *testing.T) {
	records := []model.Record{
		rec("2024-03-10", 100, "shower"),
		rec("2024-03-10", 60, "laundry"),
	}
	got := CheckAlert(records, d("2024-03-10"), model.DefaultThreshold)
	assert.Equal(t, model.AlertState{Today: 160, Threshold: 150, Exceeded: true}, got)

	got = CheckAlert(records, d("2024-03-10"), 160)
	assert.False(t, got.Exceeded)
}
