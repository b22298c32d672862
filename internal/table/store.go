package table

import (
	"sync"

	"seltable/internal/domain"
)

// RowStore provides access to row data in display order
type RowStore interface {
	GetRow(id string) (domain.Row, bool)
	AllRows() []domain.Row
	AddRow(row domain.Row)
	UpdateRow(row domain.Row)
	RemoveRow(id string) bool
	Len() int
}

// MemoryRowStore is an in-memory implementation of RowStore
type MemoryRowStore struct {
	mu    sync.RWMutex
	order []string
	rows  map[string]domain.Row
}

// NewMemoryRowStore creates a new memory-based row store
func NewMemoryRowStore(rows ...domain.Row) *MemoryRowStore {
	s := &MemoryRowStore{
		rows: make(map[string]domain.Row),
	}
	for _, r := range rows {
		s.AddRow(r)
	}
	return s
}

func (s *MemoryRowStore) GetRow(id string) (domain.Row, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rows[id]
	return r, ok
}

// AllRows returns a copy of all rows in insertion order
func (s *MemoryRowStore) AllRows() []domain.Row {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Row, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.rows[id])
	}
	return result
}

// AddRow appends a row; adding an existing ID replaces it in place
func (s *MemoryRowStore) AddRow(row domain.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.rows[row.ID]; !exists {
		s.order = append(s.order, row.ID)
	}
	s.rows[row.ID] = row
}

func (s *MemoryRowStore) UpdateRow(row domain.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.rows[row.ID]; exists {
		s.rows[row.ID] = row
	}
}

func (s *MemoryRowStore) RemoveRow(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.rows[id]; !exists {
		return false
	}
	delete(s.rows, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *MemoryRowStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
