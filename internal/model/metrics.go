package model

import "time"

// DailyAggregate holds the total liters for a single calendar day.
type DailyAggregate struct {
	Date      time.Time
	DayLabel  string // short weekday name, locale dependent
	DateLabel string // d/M
	Liters    float64
}

// StatsReport holds the aggregate over an inclusive date window.
type StatsReport struct {
	Start time.Time
	End   time.Time

	TotalLiters  float64
	AverageDaily float64 // over days with at least one record
	MaxDaily     float64
	MinDaily     float64
	DaysRecorded int

	Days []DailyAggregate // one per calendar day, oldest first
}

// ActivityStats holds liters and record counts for one activity label.
type ActivityStats struct {
	Activity     string
	Records      int
	Liters       float64
	SharePercent float64
}

// AlertState is the outcome of comparing today's total with the threshold.
type AlertState struct {
	Today     float64
	Threshold float64
	Exceeded  bool
}
