package storage

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"seltable/internal/domain"
)

const schemaVersion = 1

// savedKey is written to meta by the first Save; without it the database
// holds no dataset yet
const savedKey = "rows_saved"

// SQLite keeps the rows in an SQLite database file
type SQLite struct {
	path string
	db   *sql.DB
}

// OpenSQLite opens path, creating the database and its schema if needed
func OpenSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	// a single connection keeps writes serialized
	db.SetMaxOpenConns(1)

	s := &SQLite{path: path, db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) init() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			metakey TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS rows (
			position INTEGER NOT NULL,
			id TEXT PRIMARY KEY,
			last TEXT NOT NULL DEFAULT '',
			first TEXT NOT NULL DEFAULT '',
			grp TEXT NOT NULL DEFAULT ''
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	version, err := s.SchemaVersion()
	if err == sql.ErrNoRows {
		_, err = s.db.Exec("INSERT INTO meta (metakey, value) VALUES ('version', ?)", strconv.Itoa(schemaVersion))
		if err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("database schema version is %d; expect %d", version, schemaVersion)
	}
	return nil
}

// SchemaVersion returns the version recorded in the meta table
func (s *SQLite) SchemaVersion() (version int, err error) {
	err = s.db.QueryRow("SELECT value FROM meta WHERE metakey='version'").Scan(&version)
	return
}

// Load returns the rows in their saved order. A database that was never
// saved to is reported as os.ErrNotExist so callers can fall back to sample
// data; a saved empty dataset loads as no rows.
func (s *SQLite) Load() ([]domain.Row, error) {
	res, err := s.db.Query("SELECT id, last, first, grp FROM rows ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	defer res.Close()

	var rows []domain.Row
	for res.Next() {
		var r domain.Row
		if err := res.Scan(&r.ID, &r.Last, &r.First, &r.Group); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		rows = append(rows, r)
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		saved, err := s.saved()
		if err != nil {
			return nil, err
		}
		if !saved {
			return nil, fmt.Errorf("no rows saved in %s: %w", s.path, os.ErrNotExist)
		}
	}
	return rows, nil
}

func (s *SQLite) saved() (bool, error) {
	var count string
	err := s.db.QueryRow("SELECT value FROM meta WHERE metakey=?", savedKey).Scan(&count)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read save marker: %w", err)
	}
	return true, nil
}

// Save replaces the stored dataset in one transaction
func (s *SQLite) Save(rows []domain.Row) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM rows"); err != nil {
		return fmt.Errorf("failed to clear rows: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO rows (position, id, last, first, grp) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range rows {
		if _, err := stmt.Exec(i, r.ID, r.Last, r.First, r.Group); err != nil {
			return fmt.Errorf("failed to insert row %s: %w", r.ID, err)
		}
	}
	if _, err := tx.Exec("INSERT OR REPLACE INTO meta (metakey, value) VALUES (?, ?)", savedKey, strconv.Itoa(len(rows))); err != nil {
		return fmt.Errorf("failed to record save: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rows: %w", err)
	}
	log.Printf("Saved %d rows to %s", len(rows), s.path)
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) String() string { return s.path }
