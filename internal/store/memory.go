package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/theirongolddev/waterlog/internal/model"
)

// Memory is an in-process Store. Nothing survives Close.
type Memory struct {
	mu        sync.Mutex
	records   []model.Record
	nextID    int64
	threshold float64
}

// NewMemory returns an empty in-memory store with default settings.
func NewMemory() *Memory {
	return &Memory{nextID: 1, threshold: model.DefaultThreshold}
}

// Append implements Store.
func (m *Memory) Append(r model.Record) (model.Record, error) {
	if err := validateRecord(r); err != nil {
		return model.Record{}, err
	}
	out, err := m.AppendAll([]model.Record{r})
	if err != nil {
		return model.Record{}, err
	}
	return out[0], nil
}

// AppendAll stores records under one lock. Nothing is stored if any
// record is invalid.
func (m *Memory) AppendAll(records []model.Record) ([]model.Record, error) {
	for i, r := range records {
		if err := validateRecord(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		r.ID = m.nextID
		r.Date = model.Day(r.Date)
		m.nextID++
		out = append(out, r)
	}
	m.records = append(m.records, out...)
	return out, nil
}

// ListAll implements Store.
func (m *Memory) ListAll() ([]model.Record, error) {
	return m.filter(func(model.Record) bool { return true }), nil
}

// ListByDateRange implements Store.
func (m *Memory) ListByDateRange(start, end time.Time) ([]model.Record, error) {
	start, end = model.Day(start), model.Day(end)
	if start.After(end) {
		return nil, model.ErrInvalidRange
	}
	return m.filter(func(r model.Record) bool {
		return !r.Date.Before(start) && !r.Date.After(end)
	}), nil
}

// ListByDate implements Store.
func (m *Memory) ListByDate(day time.Time) ([]model.Record, error) {
	day = model.Day(day)
	return m.filter(func(r model.Record) bool { return r.Date.Equal(day) }), nil
}

func (m *Memory) filter(keep func(model.Record) bool) []model.Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.Record
	for _, r := range m.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	sortRecords(out)
	return out
}

// Delete implements Store.
func (m *Memory) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, r := range m.records {
		if r.ID != id {
			m.records[n] = r
			n++
		}
	}
	m.records = m.records[:n]
	return nil
}

// Threshold implements Store.
func (m *Memory) Threshold() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.threshold, nil
}

// SetThreshold implements Store.
func (m *Memory) SetThreshold(v float64) error {
	if err := validateThreshold(v); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.threshold = v
	return nil
}

// Count implements Store.
func (m *Memory) Count() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records), nil
}

// ClearAll implements Store.
func (m *Memory) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
	m.nextID = 1
	m.threshold = model.DefaultThreshold
	return nil
}

// Close implements Store.
func (m *Memory) Close() error {
	return nil
}
