package mcp

import (
	"github.com/custodia-labs/museo/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Collection fetches and persists batches.
	Collection driving.CollectionService

	// Query runs the analytical query catalog.
	Query driving.QueryService

	// DefaultLimit is used by the collect tool when no limit is given.
	// Zero means domain.DefaultFetchLimit.
	DefaultLimit int
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryService
	}
	if p.Collection == nil {
		return ErrMissingCollectionService
	}
	return nil
}
