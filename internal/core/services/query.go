package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/museo/internal/core/domain"
	"github.com/custodia-labs/museo/internal/core/ports/driven"
	"github.com/custodia-labs/museo/internal/core/ports/driving"
	"github.com/custodia-labs/museo/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService runs canned catalog statements against the artifact store.
type QueryService struct {
	catalog []domain.Query
	store   driven.ArtifactStore
}

// NewQueryService creates a query service over a fixed catalog.
func NewQueryService(catalog []domain.Query, store driven.ArtifactStore) *QueryService {
	return &QueryService{
		catalog: catalog,
		store:   store,
	}
}

// List returns a copy of the catalog in display order.
func (s *QueryService) List() []domain.Query {
	out := make([]domain.Query, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Find returns the entry at a 1-based position.
func (s *QueryService) Find(number int) (domain.Query, error) {
	if number < 1 || number > len(s.catalog) {
		return domain.Query{}, fmt.Errorf("%w: query %d (catalog has %d entries)",
			domain.ErrNotFound, number, len(s.catalog))
	}
	return s.catalog[number-1], nil
}

// Run executes a statement verbatim. Driver failures are wrapped in
// domain.ErrQueryFailed so callers can report them without crashing.
func (s *QueryService) Run(ctx context.Context, statement string) (*domain.QueryResult, error) {
	if strings.TrimSpace(statement) == "" {
		return nil, fmt.Errorf("%w: empty statement", domain.ErrInvalidInput)
	}
	if s.store == nil {
		return nil, fmt.Errorf("%w: artifact store not configured", domain.ErrQueryFailed)
	}

	logger.Debug("Running query: %s", statement)
	result, err := s.store.Query(ctx, statement)
	if err != nil {
		logger.Warn("Query failed: %v", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrQueryFailed, err)
	}
	logger.Debug("Query returned %d rows", result.RowCount())
	return result, nil
}
