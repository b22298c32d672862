package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"seltable/internal/domain"
)

// dataset is the on-disk layout of rows.toml
type dataset struct {
	Rows []domain.Row `toml:"rows"`
}

// TOMLFile keeps the rows in a TOML document
type TOMLFile struct {
	path string
}

// NewTOMLFile creates a TOML backend for path
func NewTOMLFile(path string) *TOMLFile {
	return &TOMLFile{path: path}
}

// Load reads the rows. Rows without an ID get their 1-based position as ID.
// Only a missing file is os.ErrNotExist; a file with no rows loads empty.
func (f *TOMLFile) Load() ([]domain.Row, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("data file not found: %s: %w", f.path, err)
		}
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var ds dataset
	if err := toml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}

	seen := make(map[string]bool, len(ds.Rows))
	for i := range ds.Rows {
		if ds.Rows[i].ID == "" {
			ds.Rows[i].ID = strconv.Itoa(i + 1)
		}
		if seen[ds.Rows[i].ID] {
			return nil, fmt.Errorf("duplicate row id %q in %s", ds.Rows[i].ID, f.path)
		}
		seen[ds.Rows[i].ID] = true
	}
	return ds.Rows, nil
}

// Save writes the rows, creating parent directories
func (f *TOMLFile) Save(rows []domain.Row) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := toml.Marshal(dataset{Rows: rows})
	if err != nil {
		return fmt.Errorf("failed to marshal rows: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	return nil
}

func (f *TOMLFile) Close() error { return nil }

func (f *TOMLFile) String() string { return f.path }
