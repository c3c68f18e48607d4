package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/theirongolddev/waterlog/internal/model"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver
)

// DB is a SQLite-backed Store.
type DB struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}
	// One connection keeps the counter read and the insert on the same
	// transaction and makes :memory: databases behave.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	log.Debug().Str("path", dbPath).Msg("store opened")
	return &DB{db: db, path: dbPath}, nil
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.path
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Append implements Store. The id counter and the row are written in one
// transaction.
func (d *DB) Append(r model.Record) (model.Record, error) {
	if err := validateRecord(r); err != nil {
		return model.Record{}, err
	}
	out, err := d.AppendAll([]model.Record{r})
	if err != nil {
		return model.Record{}, err
	}
	return out[0], nil
}

// AppendAll stores records in one transaction. Either every record is
// stored with consecutive ids or none is and the id counter is unchanged.
func (d *DB) AppendAll(records []model.Record) ([]model.Record, error) {
	for i, r := range records {
		if err := validateRecord(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	tx, err := d.db.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	nextID, err := readInt(tx, keyNextID, 1)
	if err != nil {
		return nil, fmt.Errorf("reading id counter: %w", err)
	}

	createdAt := time.Now().UTC().Format(time.RFC3339)
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		r.ID = nextID
		r.Date = model.Day(r.Date)
		_, err = tx.Exec(`INSERT INTO records (id, date, liters, activity, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			r.ID, model.DateKey(r.Date), r.Liters, r.Activity, r.Notes, createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("inserting record %d: %w", r.ID, err)
		}
		out = append(out, r)
		nextID++
	}

	if err := writeSetting(tx, keyNextID, strconv.FormatInt(nextID, 10)); err != nil {
		return nil, fmt.Errorf("advancing id counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	for _, r := range out {
		log.Debug().Int64("id", r.ID).Float64("liters", r.Liters).Str("date", model.DateKey(r.Date)).Msg("record appended")
	}
	return out, nil
}

// ListAll implements Store.
func (d *DB) ListAll() ([]model.Record, error) {
	return d.query(`SELECT id, date, liters, activity, notes FROM records ORDER BY date, id`)
}

// ListByDateRange implements Store.
func (d *DB) ListByDateRange(start, end time.Time) ([]model.Record, error) {
	start, end = model.Day(start), model.Day(end)
	if start.After(end) {
		return nil, model.ErrInvalidRange
	}
	return d.query(`SELECT id, date, liters, activity, notes FROM records
		WHERE date >= ? AND date <= ? ORDER BY date, id`,
		model.DateKey(start), model.DateKey(end))
}

// ListByDate implements Store.
func (d *DB) ListByDate(day time.Time) ([]model.Record, error) {
	return d.query(`SELECT id, date, liters, activity, notes FROM records
		WHERE date = ? ORDER BY id`, model.DateKey(model.Day(day)))
}

func (d *DB) query(q string, args ...any) ([]model.Record, error) {
	rows, err := d.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []model.Record
	for rows.Next() {
		var r model.Record
		var dateStr string
		if err := rows.Scan(&r.ID, &dateStr, &r.Liters, &r.Activity, &r.Notes); err != nil {
			return nil, err
		}
		r.Date, err = model.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("record %d: bad date %q: %w", r.ID, dateStr, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Delete implements Store.
func (d *DB) Delete(id int64) error {
	res, err := d.db.Exec("DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		log.Debug().Int64("id", id).Msg("delete: no such record")
	}
	return nil
}

// Threshold implements Store.
func (d *DB) Threshold() (float64, error) {
	var val string
	err := d.db.QueryRow("SELECT value FROM settings WHERE key = ?", keyThreshold).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultThreshold, nil
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(val, 64)
	if err != nil || !validLiters(v) {
		log.Warn().Str("value", val).Msg("stored threshold unreadable, using default")
		return model.DefaultThreshold, nil
	}
	return v, nil
}

// SetThreshold implements Store.
func (d *DB) SetThreshold(v float64) error {
	if err := validateThreshold(v); err != nil {
		return err
	}
	return writeSetting(d.db, keyThreshold, strconv.FormatFloat(v, 'g', -1, 64))
}

// ClearAll implements Store.
func (d *DB) ClearAll() error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM settings"); err != nil {
		return err
	}
	return tx.Commit()
}

// Count implements Store.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count)
	return count, err
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

type queryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

func writeSetting(e execer, key, value string) error {
	_, err := e.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	return err
}

func readInt(q queryRower, key string, def int64) (int64, error) {
	var val string
	err := q.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}
