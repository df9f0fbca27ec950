// Package repository defines the screening-record store interface and errors.
package repository

import (
	"context"

	"github.com/okian/hiresim/internal/domain/model"
)

// Store is the result sink for the search loop: one record per candidate
// processed, queryable afterwards for reporting.
type Store interface {
	// Record appends a screening record. Recording the same candidate
	// twice returns ErrDuplicateRecord.
	Record(ctx context.Context, rec model.ScreeningRecord) error

	// Get returns the record for a candidate.
	// Returns ErrNotFound if the candidate was never screened.
	Get(ctx context.Context, candidateID string) (model.ScreeningRecord, error)

	// TopN returns the n highest-scoring screened candidates, ordered by
	// final skill estimate descending.
	TopN(ctx context.Context, n int) ([]model.ScreeningRecord, error)

	// Count returns the number of screened candidates.
	Count(ctx context.Context) int
}
