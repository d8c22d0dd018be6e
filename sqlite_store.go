package tamperlog

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Import SQLite driver for database/sql
)

// sqliteAnchorStore keeps the trust anchor in a SQLite database: a
// single-row cell with the crash consistency the anchor contract
// requires delegated to SQLite's journal. The database file should live
// on a medium separate from the log file.
type sqliteAnchorStore struct{ db *sql.DB }

// OpenSQLiteAnchor opens/creates the anchor DB and ensures schema + PRAGMAs.
func OpenSQLiteAnchor(dsn string) (*sqliteAnchorStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	for _, p := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=FULL;",
		"PRAGMA busy_timeout=5000;",
	} {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", p, err)
		}
	}
	schema := `
CREATE TABLE IF NOT EXISTS anchor (
  id    INTEGER PRIMARY KEY CHECK(id=1),
  tip   TEXT NOT NULL
);
`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteAnchorStore{db: db}, nil
}

// Get returns the stored anchor, or ZeroHash if the cell was never set.
func (s *sqliteAnchorStore) Get() (Hash, error) {
	var tip string
	err := s.db.QueryRow(`SELECT tip FROM anchor WHERE id=1`).Scan(&tip)
	if errors.Is(err, sql.ErrNoRows) {
		return ZeroHash, nil
	}
	if err != nil {
		return "", err
	}
	if len(tip) != HashHexLen {
		return "", fmt.Errorf("invalid anchor size: %d, want %d", len(tip), HashHexLen)
	}
	return Hash(tip), nil
}

// Set durably replaces the anchor.
func (s *sqliteAnchorStore) Set(h Hash) error {
	_, err := s.db.Exec(
		`INSERT INTO anchor(id, tip) VALUES(1, ?)
		 ON CONFLICT(id) DO UPDATE SET tip=excluded.tip`, string(h))
	return err
}

// Close closes the underlying database.
func (s *sqliteAnchorStore) Close() error {
	return s.db.Close()
}
