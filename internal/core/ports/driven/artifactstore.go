package driven

import (
	"context"

	"github.com/custodia-labs/museo/internal/core/domain"
)

// ArtifactStore persists the three relations to a relational store.
type ArtifactStore interface {
	// Replace drops and recreates all three tables with the given rows.
	Replace(ctx context.Context, relations domain.Relations) error

	// Query executes a statement verbatim and returns its projection.
	Query(ctx context.Context, statement string) (*domain.QueryResult, error)

	// Path returns the database file location.
	Path() string
}
