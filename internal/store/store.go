// Package store holds the current canonical record set. A store starts out
// seeded with the bundled sample data and is only ever mutated by wholesale
// replacement after a successful ingest; there is no merge or append.
package store

import (
	"sort"
	"sync"

	"laborcli/pkg/contracts/domain"
)

// Store is the process-wide record set with read/filter accessors. Reads
// never block each other; Replace swaps the whole set atomically, so a
// concurrent ingest race resolves to last-write-wins.
type Store struct {
	mu      sync.RWMutex
	records []domain.LaborRecord
}

// New creates a store seeded with the bundled sample record set.
func New() *Store {
	return NewWithRecords(SampleRecords())
}

// NewWithRecords creates a store holding the given record set. Used by tests
// to exercise the analytics layer against fixture data.
func NewWithRecords(records []domain.LaborRecord) *Store {
	return &Store{records: records}
}

// Replace swaps the current record set for a new one. This is the store's
// only mutation.
func (s *Store) Replace(records []domain.LaborRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
}

// All returns a copy of the current record set.
func (s *Store) All() []domain.LaborRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.LaborRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Count returns the current record count.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// FilterByGeography returns all records with the exact geography label.
// An unknown geography yields an empty slice, never an error.
func (s *Store) FilterByGeography(geography string) []domain.LaborRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.LaborRecord, 0)
	for _, rec := range s.records {
		if rec.Geography == geography {
			out = append(out, rec)
		}
	}
	return out
}

// FilterByDateRange returns all records whose date falls inside the inclusive
// range. Comparison is lexicographic, which is exactly right for the YYYY-MM
// date keys the engine deals in.
func (s *Store) FilterByDateRange(from, to string) []domain.LaborRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.LaborRecord, 0)
	for _, rec := range s.records {
		if rec.Date >= from && rec.Date <= to {
			out = append(out, rec)
		}
	}
	return out
}

// Geographies returns the distinct geography labels, sorted ascending.
func (s *Store) Geographies() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, rec := range s.records {
		if _, ok := seen[rec.Geography]; ok {
			continue
		}
		seen[rec.Geography] = struct{}{}
		out = append(out, rec.Geography)
	}
	sort.Strings(out)
	return out
}
