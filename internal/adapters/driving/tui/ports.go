// Package tui provides an interactive terminal dashboard for museo.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/museo/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the TUI.
type Ports struct {
	// Collection fetches and persists batches.
	Collection driving.CollectionService

	// Query runs the analytical query catalog.
	Query driving.QueryService

	// Settings exposes the effective configuration. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	collection driving.CollectionService,
	query driving.QueryService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Collection: collection,
		Query:      query,
		Settings:   settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Collection == nil {
		return ErrMissingCollectionService
	}
	if p.Query == nil {
		return ErrMissingQueryService
	}
	return nil
}
