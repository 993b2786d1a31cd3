// Package memory is an in-process export target for tests and local runs
// without Google credentials.
package memory

import (
	"context"
	"sync"

	"dompet/internal/core"
)

type Store struct {
	mu          sync.Mutex
	recaps      []core.MonthlyRecap
	allocations []core.AllocationView
	writes      int
}

func New() *Store {
	return &Store{}
}

// WriteRecaps replaces the stored recap rows.
func (s *Store) WriteRecaps(_ context.Context, recaps []core.MonthlyRecap) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recaps = append([]core.MonthlyRecap(nil), recaps...)
	s.writes++
	return nil
}

// WriteAllocations replaces the stored allocation rows.
func (s *Store) WriteAllocations(_ context.Context, views []core.AllocationView) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allocations = append([]core.AllocationView(nil), views...)
	s.writes++
	return nil
}

// Recaps returns the last written recap rows.
func (s *Store) Recaps() []core.MonthlyRecap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.MonthlyRecap(nil), s.recaps...)
}

// Allocations returns the last written allocation rows.
func (s *Store) Allocations() []core.AllocationView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.AllocationView(nil), s.allocations...)
}

// Writes reports how many export calls were made.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
