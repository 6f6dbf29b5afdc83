package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/museo/internal/core/domain"
	"github.com/custodia-labs/museo/internal/core/ports/driving"
)

// MockCollectionService implements driving.CollectionService for testing.
type MockCollectionService struct {
	CollectFunc func(ctx context.Context, classification string, limit int, progress driving.ProgressFunc) (*domain.ResultSet, error)
	PersistFunc func(ctx context.Context, batch *domain.ResultSet) error
}

func (m *MockCollectionService) Collect(
	ctx context.Context, classification string, limit int, progress driving.ProgressFunc,
) (*domain.ResultSet, error) {
	if m.CollectFunc != nil {
		return m.CollectFunc(ctx, classification, limit, progress)
	}
	return &domain.ResultSet{Classification: classification, Limit: limit}, nil
}

func (m *MockCollectionService) Persist(ctx context.Context, batch *domain.ResultSet) error {
	if m.PersistFunc != nil {
		return m.PersistFunc(ctx, batch)
	}
	if batch == nil || batch.IsEmpty() {
		return domain.ErrNoData
	}
	return nil
}

// MockQueryService implements driving.QueryService for testing.
type MockQueryService struct {
	Catalog []domain.Query
	RunFunc func(ctx context.Context, statement string) (*domain.QueryResult, error)
}

func (m *MockQueryService) List() []domain.Query { return m.Catalog }

func (m *MockQueryService) Find(number int) (domain.Query, error) {
	if number < 1 || number > len(m.Catalog) {
		return domain.Query{}, domain.ErrNotFound
	}
	return m.Catalog[number-1], nil
}

func (m *MockQueryService) Run(ctx context.Context, statement string) (*domain.QueryResult, error) {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, statement)
	}
	return &domain.QueryResult{Columns: []string{"n"}, Rows: [][]string{{"1"}}}, nil
}

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	Settings *domain.AppSettings
	Err      error
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) { return m.Settings, m.Err }
func (m *MockSettingsService) Set(_, _ string) error            { return nil }
func (m *MockSettingsService) Keys() []string                   { return nil }
func (m *MockSettingsService) Path() string                     { return "config.toml" }

// Compile-time checks.
var (
	_ driving.CollectionService = (*MockCollectionService)(nil)
	_ driving.QueryService      = (*MockQueryService)(nil)
	_ driving.SettingsService   = (*MockSettingsService)(nil)
)

func TestNewPorts(t *testing.T) {
	collection := &MockCollectionService{}
	query := &MockQueryService{}
	settings := &MockSettingsService{}

	ports := NewPorts(collection, query, settings)

	require.NotNil(t, ports)
	assert.Equal(t, collection, ports.Collection)
	assert.Equal(t, query, ports.Query)
	assert.Equal(t, settings, ports.Settings)
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name  string
		ports *Ports
		err   error
	}{
		{"all set", NewPorts(&MockCollectionService{}, &MockQueryService{}, &MockSettingsService{}), nil},
		{"settings optional", NewPorts(&MockCollectionService{}, &MockQueryService{}, nil), nil},
		{"missing collection", NewPorts(nil, &MockQueryService{}, nil), ErrMissingCollectionService},
		{"missing query", NewPorts(&MockCollectionService{}, nil, nil), ErrMissingQueryService},
		{"nil ports", nil, ErrInvalidPorts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
