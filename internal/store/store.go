// Package store persists consumption records and the user's settings.
package store

import (
	"math"
	"sort"
	"time"

	"github.com/theirongolddev/waterlog/internal/model"
)

// Store is the record and settings persistence contract.
type Store interface {
	// Append assigns the next id to r and stores it.
	Append(r model.Record) (model.Record, error)
	// AppendAll stores records with consecutive ids, all or nothing.
	AppendAll(records []model.Record) ([]model.Record, error)
	// ListAll returns every record ordered by date, then id.
	ListAll() ([]model.Record, error)
	// ListByDateRange returns records dated within [start, end] inclusive.
	ListByDateRange(start, end time.Time) ([]model.Record, error)
	// ListByDate returns records dated on day.
	ListByDate(day time.Time) ([]model.Record, error)
	// Count returns the number of stored records.
	Count() (int, error)
	// Delete removes the record with id. Missing ids are not an error.
	Delete(id int64) error
	// Threshold returns the daily liter limit, DefaultThreshold when unset.
	Threshold() (float64, error)
	// SetThreshold stores a new daily liter limit.
	SetThreshold(v float64) error
	// ClearAll removes every record and resets both settings.
	ClearAll() error
	Close() error
}

func validLiters(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func validateRecord(r model.Record) error {
	if !validLiters(r.Liters) {
		return model.ErrInvalidLiters
	}
	return nil
}

func validateThreshold(v float64) error {
	if !validLiters(v) {
		return model.ErrInvalidThreshold
	}
	return nil
}

func sortRecords(records []model.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.Before(records[j].Date)
		}
		return records[i].ID < records[j].ID
	})
}
