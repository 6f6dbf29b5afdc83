package mcp

import (
	"context"

	"github.com/custodia-labs/museo/internal/core/domain"
	"github.com/custodia-labs/museo/internal/core/ports/driving"
)

// mockQueryService is a mock implementation of driving.QueryService.
type mockQueryService struct {
	catalog []domain.Query
	result  *domain.QueryResult
	err     error
	ran     string
}

func (m *mockQueryService) List() []domain.Query {
	return m.catalog
}

func (m *mockQueryService) Find(n int) (domain.Query, error) {
	if n < 1 || n > len(m.catalog) {
		return domain.Query{}, domain.ErrNotFound
	}
	return m.catalog[n-1], nil
}

func (m *mockQueryService) Run(_ context.Context, statement string) (*domain.QueryResult, error) {
	m.ran = statement
	return m.result, m.err
}

// mockCollectionService is a mock implementation of driving.CollectionService.
type mockCollectionService struct {
	batch      *domain.ResultSet
	collectErr error
	persistErr error

	classification string
	limit          int
	persisted      *domain.ResultSet
}

func (m *mockCollectionService) Collect(
	_ context.Context,
	classification string,
	limit int,
	_ driving.ProgressFunc,
) (*domain.ResultSet, error) {
	m.classification = classification
	m.limit = limit
	return m.batch, m.collectErr
}

func (m *mockCollectionService) Persist(_ context.Context, batch *domain.ResultSet) error {
	m.persisted = batch
	return m.persistErr
}

func testCatalog() []domain.Query {
	return []domain.Query{
		{Question: "How many artifacts are there?", SQL: "SELECT COUNT(*) FROM artifact_metadata;"},
		{Question: "What are the top colours?", SQL: "SELECT color FROM artifact_colors;"},
	}
}

func testPorts() *Ports {
	return &Ports{
		Query:      &mockQueryService{catalog: testCatalog()},
		Collection: &mockCollectionService{},
	}
}
