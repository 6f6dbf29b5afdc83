package driving

import (
	"context"

	"github.com/custodia-labs/museo/internal/core/domain"
)

// ProgressFunc receives advisory progress after each fetched page.
type ProgressFunc func(domain.FetchProgress)

// CollectionService fetches, normalises and persists catalog data.
type CollectionService interface {
	// Collect pages through the catalog for a classification until limit
	// records are gathered or the source stops, then normalises them.
	// Transport failures do not produce an error: the returned ResultSet
	// holds the prefix collected so far and reports the outcome.
	// progress may be nil.
	Collect(ctx context.Context, classification string, limit int, progress ProgressFunc) (*domain.ResultSet, error)

	// Persist replaces the stored tables with the batch's relations.
	// Returns domain.ErrNoData without touching the store when the batch
	// has no metadata rows.
	Persist(ctx context.Context, batch *domain.ResultSet) error
}
