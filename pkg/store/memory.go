package store

import (
	"context"
	"slices"
	"sync"

	"github.com/clowdgraph/clowd/pkg/analyze"
)

// MemoryStore keeps reports in process memory. Useful for development,
// testing, and single-process CLI usage.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string]*analyze.Report
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string]*analyze.Report)}
}

// SaveReport archives a report in memory.
func (s *MemoryStore) SaveReport(ctx context.Context, report *analyze.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[report.ID]; ok {
		return ErrDuplicate
	}
	clone := *report
	s.reports[report.ID] = &clone
	return nil
}

// GetReport retrieves a report by ID.
func (s *MemoryStore) GetReport(ctx context.Context, id string) (*analyze.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *report
	return &clone, nil
}

// ListReports returns archived reports, newest first.
func (s *MemoryStore) ListReports(ctx context.Context, limit int) ([]*analyze.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*analyze.Report, 0, len(s.reports))
	for _, report := range s.reports {
		clone := *report
		out = append(out, &clone)
	}
	slices.SortFunc(out, func(a, b *analyze.Report) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
