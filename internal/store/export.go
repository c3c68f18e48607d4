package store

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/theirongolddev/waterlog/internal/model"
)

// recordJSON is the exchange form of a record. Dates are YYYY-MM-DD.
type recordJSON struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	Liters   float64 `json:"liters"`
	Activity string  `json:"activity"`
	Notes    string  `json:"notes"`
}

// Export writes every record in s to w as an indented JSON array.
func Export(s Store, w io.Writer) (int, error) {
	records, err := s.ListAll()
	if err != nil {
		return 0, fmt.Errorf("listing records: %w", err)
	}

	out := make([]recordJSON, 0, len(records))
	for _, r := range records {
		out = append(out, recordJSON{
			ID:       r.ID,
			Date:     model.DateKey(r.Date),
			Liters:   r.Liters,
			Activity: r.Activity,
			Notes:    r.Notes,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return 0, fmt.Errorf("encoding records: %w", err)
	}
	return len(out), nil
}

// Import reads a JSON array written by Export and appends its entries to s
// in one batch. Ids in the input are ignored; s assigns fresh ones. A bad
// entry or a store error leaves s unchanged.
func Import(s Store, r io.Reader) (int, error) {
	var in []recordJSON
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return 0, fmt.Errorf("decoding records: %w", err)
	}

	records := make([]model.Record, 0, len(in))
	for i, rj := range in {
		day, err := model.ParseDate(rj.Date)
		if err != nil {
			return 0, fmt.Errorf("entry %d: bad date %q: %w", i, rj.Date, err)
		}
		rec := model.Record{Date: day, Liters: rj.Liters, Activity: rj.Activity, Notes: rj.Notes}
		if err := validateRecord(rec); err != nil {
			return 0, fmt.Errorf("entry %d: %w", i, err)
		}
		records = append(records, rec)
	}

	stored, err := s.AppendAll(records)
	if err != nil {
		return 0, fmt.Errorf("storing records: %w", err)
	}
	return len(stored), nil
}
