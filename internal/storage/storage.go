// Package storage persists the row dataset. Two backends exist: a TOML
// file and an SQLite database.
package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"seltable/internal/domain"
)

// Backend kinds
const (
	KindTOML   = "toml"
	KindSQLite = "sqlite"
)

// Backend loads and saves the full dataset
type Backend interface {
	Load() ([]domain.Row, error)
	Save(rows []domain.Row) error
	Close() error
	String() string
}

// KindFor picks a backend kind. An explicit kind wins; otherwise .db,
// .sqlite and .sqlite3 files are SQLite and everything else is TOML.
func KindFor(kind, path string) string {
	if k := strings.ToLower(strings.TrimSpace(kind)); k != "" {
		return k
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite
	default:
		return KindTOML
	}
}

// Open creates the backend for path
func Open(kind, path string) (Backend, error) {
	switch KindFor(kind, path) {
	case KindTOML:
		return NewTOMLFile(path), nil
	case KindSQLite:
		db, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown storage kind %q", kind)
	}
}
