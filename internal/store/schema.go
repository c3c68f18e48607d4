package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS records (
    id                   INTEGER PRIMARY KEY,
    date                 TEXT NOT NULL,
    liters               REAL NOT NULL CHECK (liters > 0),
    activity             TEXT NOT NULL DEFAULT '',
    notes                TEXT NOT NULL DEFAULT '',
    created_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    key                  TEXT PRIMARY KEY,
    value                TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_records_date ON records(date);
`

// Setting keys.
const (
	keyThreshold = "threshold"
	keyNextID    = "next_id"
)
