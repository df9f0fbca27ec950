package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/okian/hiresim/internal/domain/model"
)

// MemStore implements Store in memory. Writes arrive from concurrent
// trial workers, so access is mutex-guarded; ordering queries sort on
// demand, which is ample at simulation scale.
type MemStore struct {
	mu      sync.RWMutex
	byID    map[string]model.ScreeningRecord
	records []model.ScreeningRecord
}

// NewMemStore creates an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		byID: make(map[string]model.ScreeningRecord),
	}
}

// Record implements Store.
func (s *MemStore) Record(_ context.Context, rec model.ScreeningRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[rec.CandidateID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRecord, rec.CandidateID)
	}
	s.byID[rec.CandidateID] = rec
	s.records = append(s.records, rec)
	return nil
}

// Get implements Store.
func (s *MemStore) Get(_ context.Context, candidateID string) (model.ScreeningRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[candidateID]
	if !ok {
		return model.ScreeningRecord{}, fmt.Errorf("%w: %s", ErrNotFound, candidateID)
	}
	return rec, nil
}

// TopN implements Store.
func (s *MemStore) TopN(_ context.Context, n int) ([]model.ScreeningRecord, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}

	s.mu.RLock()
	out := append([]model.ScreeningRecord(nil), s.records...)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.FinalScore > out[j].Result.FinalScore
	})
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// Count implements Store.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
