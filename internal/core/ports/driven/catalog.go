package driven

import (
	"context"

	"github.com/custodia-labs/museo/internal/core/domain"
)

// CatalogClient reads pages from a remote object catalog.
type CatalogClient interface {
	// FetchPage requests a single page of records for a classification.
	// Page numbers start at 1. A non-success HTTP status, a network failure
	// or an undecodable body is returned as an error; an empty page is not.
	FetchPage(ctx context.Context, classification string, page, size int) (*domain.Page, error)
}
