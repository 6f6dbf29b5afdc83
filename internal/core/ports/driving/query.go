package driving

import (
	"context"

	"github.com/custodia-labs/museo/internal/core/domain"
)

// QueryService exposes the canned query catalog.
type QueryService interface {
	// List returns the catalog entries in display order.
	List() []domain.Query

	// Find returns the entry at a 1-based position.
	Find(number int) (domain.Query, error)

	// Run executes a statement against the persisted store.
	Run(ctx context.Context, statement string) (*domain.QueryResult, error)
}
