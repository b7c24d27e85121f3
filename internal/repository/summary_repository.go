// Package repository declares the persistence interfaces the use cases depend on.
package repository

import (
	"context"

	"summarizer/internal/domain/entity"
)

// SummaryRepository is the persistence collaborator for summaries.
//
// Absence is reported as a nil record (or a zero id) with a nil error,
// never as an error value.
type SummaryRepository interface {
	// Create stores s and returns the id assigned by the store.
	Create(ctx context.Context, s *entity.Summary) (int64, error)
	// Get returns (nil, nil) when no summary has the given id.
	Get(ctx context.Context, id int64) (*entity.Summary, error)
	// List returns every summary ordered by id.
	List(ctx context.Context) ([]*entity.Summary, error)
	// Update replaces url and summary and returns the stored record,
	// or (nil, nil) when the row no longer exists.
	Update(ctx context.Context, id int64, in entity.SummaryUpdate) (*entity.Summary, error)
	// Delete removes the summary and returns its id, or 0 when nothing was removed.
	Delete(ctx context.Context, id int64) (int64, error)
}
