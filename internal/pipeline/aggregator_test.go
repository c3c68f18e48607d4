package pipeline

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/theirongolddev/waterlog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) time.Time {
	t, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func rec(date string, liters float64, activity string) model.Record {
	return model.Record{Date: d(date), Liters: liters, Activity: activity}
}

func TestAggregateScenario(t *testing.T) {
	records := []model.Record{
		rec("2024-03-10", 50, "shower"),
		rec("2024-03-10", 30, "dishes"),
	}

	r, err := Aggregate(records, d("2024-03-10"), d("2024-03-11"))
	require.NoError(t, err)

	assert.Equal(t, 80.0, r.TotalLiters)
	assert.Equal(t, 80.0, r.AverageDaily)
	assert.Equal(t, 80.0, r.MaxDaily)
	assert.Equal(t, 80.0, r.MinDaily)
	assert.Equal(t, 1, r.DaysRecorded)
	require.Len(t, r.Days, 2)
	assert.Equal(t, 80.0, r.Days[0].Liters)
	assert.Equal(t, 0.0, r.Days[1].Liters)
	assert.Equal(t, "Sun", r.Days[0].DayLabel)
	assert.Equal(t, "10/3", r.Days[0].DateLabel)
}

func TestAggregateEmpty(t *testing.T) {
	start, end := Window(d("2024-03-16"), WeeklyDays)
	r, err := Aggregate(nil, start, end)
	require.NoError(t, err)

	require.Len(t, r.Days, 7)
	for _, day := range r.Days {
		assert.Zero(t, day.Liters)
	}
	assert.Zero(t, r.TotalLiters)
	assert.Zero(t, r.AverageDaily)
	assert.Zero(t, r.MaxDaily)
	assert.Zero(t, r.MinDaily)
	assert.Zero(t, r.DaysRecorded)
}

func TestAggregateSingleDay(t *testing.T) {
	r, err := Aggregate([]model.Record{rec("2024-03-10", 12, "")}, d("2024-03-10"), d("2024-03-10"))
	require.NoError(t, err)
	require.Len(t, r.Days, 1)
	assert.Equal(t, 12.0, r.TotalLiters)
}

func TestAggregateInvalidRange(t *testing.T) {
	_, err := Aggregate(nil, d("2024-03-11"), d("2024-03-10"))
	assert.ErrorIs(t, err, model.ErrInvalidRange)
}

func TestAggregateDropsOutOfRange(t *testing.T) {
	records := []model.Record{
		rec("2024-03-09", 500, "laundry"),
		rec("2024-03-10", 40, "shower"),
		rec("2024-03-12", 500, "laundry"),
	}
	r, err := Aggregate(records, d("2024-03-10"), d("2024-03-11"))
	require.NoError(t, err)
	assert.Equal(t, 40.0, r.TotalLiters)
	assert.Equal(t, 40.0, r.MaxDaily)
	assert.Equal(t, 1, r.DaysRecorded)
}

func TestAggregateCalendarBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"leap february", "2024-02-27", "2024-03-02", 5},
		{"non-leap february", "2023-02-27", "2023-03-02", 4},
		{"month end", "2024-04-29", "2024-05-02", 4},
		{"year end", "2023-12-30", "2024-01-02", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Aggregate(nil, d(tt.start), d(tt.end))
			require.NoError(t, err)
			require.Len(t, r.Days, tt.want)
			for i := 1; i < len(r.Days); i++ {
				assert.True(t, r.Days[i].Date.After(r.Days[i-1].Date))
				assert.Equal(t, 1, int(r.Days[i].Date.Sub(r.Days[i-1].Date).Hours()/24))
			}
			assert.True(t, r.Days[0].Date.Equal(d(tt.start)))
			assert.True(t, r.Days[len(r.Days)-1].Date.Equal(d(tt.end)))
		})
	}
}

func TestAggregateProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	start, end := d("2024-01-20"), d("2024-03-05")

	for round := 0; round < 50; round++ {
		var records []model.Record
		var inRange float64
		n := rng.Intn(60)
		for i := 0; i < n; i++ {
			day := start.AddDate(0, 0, rng.Intn(70)-10)
			liters := float64(rng.Intn(4000))/10 + 0.1
			records = append(records, model.Record{Date: day, Liters: liters})
			if !day.Before(start) && !day.After(end) {
				inRange += liters
			}
		}

		r, err := Aggregate(records, start, end)
		require.NoError(t, err)
		assert.Len(t, r.Days, model.DaysBetween(start, end))
		assert.InDelta(t, inRange, r.TotalLiters, 1e-6)

		if r.DaysRecorded > 0 {
			assert.InDelta(t, r.TotalLiters, r.AverageDaily*float64(r.DaysRecorded), 1e-6)
			for _, day := range r.Days {
				if day.Liters > 0 {
					assert.GreaterOrEqual(t, r.MaxDaily, day.Liters)
					assert.LessOrEqual(t, r.MinDaily, day.Liters)
				}
			}
		} else {
			assert.Zero(t, r.AverageDaily)
		}

		again, err := Aggregate(records, start, end)
		require.NoError(t, err)
		assert.Equal(t, math.Float64bits(r.TotalLiters), math.Float64bits(again.TotalLiters))
		assert.Equal(t, r, again)
	}
}

func TestAggregateSpanishLabels(t *testing.T) {
	r, err := AggregateWith(nil, d("2024-03-13"), d("2024-03-16"), LabelerFor("es_ES.UTF-8"))
	require.NoError(t, err)
	got := make([]string, len(r.Days))
	for i, day := range r.Days {
		got[i] = day.DayLabel
	}
	assert.Equal(t, []string{"mié", "jue", "vie", "sáb"}, got)
}

func TestLabelerFor(t *testing.T) {
	assert.Equal(t, Spanish, LabelerFor("es"))
	assert.Equal(t, Spanish, LabelerFor("ES-mx"))
	assert.Equal(t, English, LabelerFor("en_US"))
	assert.Equal(t, English, LabelerFor(""))
	assert.Equal(t, English, LabelerFor("fr"))
}

func TestWindow(t *testing.T) {
	start, end := Window(time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC), WeeklyDays)
	assert.True(t, start.Equal(d("2024-02-24")))
	assert.True(t, end.Equal(d("2024-03-01")))

	start, end = Window(d("2024-03-01"), 0)
	assert.True(t, start.Equal(end))
}

func TestAggregateActivities(t *testing.T) {
	records := []model.Record{
		rec("2024-03-10", 60, "shower"),
		rec("2024-03-11", 20, "shower"),
		rec("2024-03-11", 80, "laundry"),
		rec("2024-03-12", 40, "  "),
	}
	acts := AggregateActivities(records)
	require.Len(t, acts, 3)

	// Ties on liters sort by name.
	assert.Equal(t, "laundry", acts[0].Activity)
	assert.Equal(t, "shower", acts[1].Activity)
	assert.Equal(t, 2, acts[1].Records)
	assert.Equal(t, UnspecifiedActivity, acts[2].Activity)
	assert.InDelta(t, 40.0, acts[0].SharePercent, 1e-9)

	var share float64
	for _, a := range acts {
		share += a.SharePercent
	}
	assert.InDelta(t, 100.0, share, 1e-9)
	assert.Empty(t, AggregateActivities(nil))
}

func TestFilters(t *testing.T) {
	records := []model.Record{
		rec("2024-03-09", 1, "Shower"),
		rec("2024-03-10", 2, "dishes"),
		rec("2024-03-11", 3, "garden watering"),
	}
	assert.Len(t, FilterByDateRange(records, d("2024-03-10"), d("2024-03-11")), 2)
	assert.Len(t, FilterByActivity(records, "SHOW"), 1)
	assert.Len(t, FilterByActivity(records, "water"), 1)
	assert.Len(t, FilterByActivity(records, ""), 3)
}

func TestAggregateLongRangeDayCount(t *testing.T) {
	start := time.Date(1700, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	r, err := Aggregate(nil, start, end)
	require.NoError(t, err)
	assert.Len(t, r.Days, model.DaysBetween(start, end))
	assert.Equal(t, start, r.Days[0].Date)
	assert.Equal(t, end, r.Days[len(r.Days)-1].Date)
}
