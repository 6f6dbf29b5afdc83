package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/museo/internal/core/domain"
)

func TestServer_handleListQueries(t *testing.T) {
	server, err := NewServer(testPorts())
	require.NoError(t, err)

	_, output, err := server.handleListQueries(context.Background(), nil, ListQueriesInput{})

	require.NoError(t, err)
	assert.Equal(t, 2, output.Count)
	require.Len(t, output.Queries, 2)
	assert.Equal(t, 1, output.Queries[0].Number)
	assert.Equal(t, "How many artifacts are there?", output.Queries[0].Question)
	assert.Equal(t, 2, output.Queries[1].Number)
	assert.Equal(t, "SELECT color FROM artifact_colors;", output.Queries[1].SQL)
}

func TestServer_handleRunQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("runs the numbered query", func(t *testing.T) {
		query := &mockQueryService{
			catalog: testCatalog(),
			result: &domain.QueryResult{
				Columns: []string{"color"},
				Rows:    [][]string{{"red"}, {"blue"}},
			},
		}
		ports := testPorts()
		ports.Query = query
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleRunQuery(ctx, nil, RunQueryInput{Number: 2})

		require.NoError(t, err)
		assert.Equal(t, "SELECT color FROM artifact_colors;", query.ran)
		assert.Equal(t, "What are the top colours?", output.Question)
		assert.Equal(t, []string{"color"}, output.Columns)
		assert.Equal(t, 2, output.RowCount)
	})

	t.Run("unknown number", func(t *testing.T) {
		server, err := NewServer(testPorts())
		require.NoError(t, err)

		_, _, err = server.handleRunQuery(ctx, nil, RunQueryInput{Number: 21})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("sql failure", func(t *testing.T) {
		ports := testPorts()
		ports.Query = &mockQueryService{
			catalog: testCatalog(),
			err:     errors.Join(domain.ErrQueryFailed, errors.New("no such table: artifact_metadata")),
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleRunQuery(ctx, nil, RunQueryInput{Number: 1})

		assert.ErrorIs(t, err, domain.ErrQueryFailed)
		assert.Contains(t, err.Error(), "no such table")
	})
}

func TestServer_handleCollect(t *testing.T) {
	ctx := context.Background()

	batch := &domain.ResultSet{
		BatchID:        "batch-1",
		Classification: "Coins",
		Outcome:        domain.OutcomeLimitReached,
		Relations: domain.Relations{
			Metadata: make([]domain.ArtifactMetadata, 50),
			Media:    make([]domain.ArtifactMedia, 20),
			Colors:   make([]domain.ArtifactColor, 15),
		},
	}

	t.Run("collects with parsed classification", func(t *testing.T) {
		collection := &mockCollectionService{batch: batch}
		ports := testPorts()
		ports.Collection = collection
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleCollect(ctx, nil, CollectInput{Classification: "coins", Limit: 50})

		require.NoError(t, err)
		assert.Equal(t, "Coins", collection.classification)
		assert.Equal(t, 50, collection.limit)
		assert.Equal(t, CollectOutput{
			BatchID:        "batch-1",
			Classification: "Coins",
			Outcome:        "limit_reached",
			Metadata:       50,
			Media:          20,
			Colors:         15,
		}, output)
		assert.Nil(t, collection.persisted)
	})

	t.Run("default limit", func(t *testing.T) {
		collection := &mockCollectionService{batch: batch}
		ports := testPorts()
		ports.Collection = collection
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleCollect(ctx, nil, CollectInput{Classification: "Coins"})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultFetchLimit, collection.limit)

		ports.DefaultLimit = 100
		_, _, err = server.handleCollect(ctx, nil, CollectInput{Classification: "Coins"})
		require.NoError(t, err)
		assert.Equal(t, 100, collection.limit)
	})

	t.Run("save persists the batch", func(t *testing.T) {
		collection := &mockCollectionService{batch: batch}
		ports := testPorts()
		ports.Collection = collection
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleCollect(ctx, nil, CollectInput{Classification: "Coins", Save: true})

		require.NoError(t, err)
		assert.True(t, output.Saved)
		assert.Equal(t, batch, collection.persisted)
	})

	t.Run("save failure", func(t *testing.T) {
		empty := &domain.ResultSet{Classification: "Coins", Outcome: domain.OutcomeSourceExhausted}
		collection := &mockCollectionService{batch: empty, persistErr: domain.ErrNoData}
		ports := testPorts()
		ports.Collection = collection
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleCollect(ctx, nil, CollectInput{Classification: "Coins", Save: true})

		assert.ErrorIs(t, err, domain.ErrNoData)
		assert.False(t, output.Saved)
	})

	t.Run("partial fetch reports cause", func(t *testing.T) {
		partial := &domain.ResultSet{
			Classification: "Coins",
			Outcome:        domain.OutcomeTransportFailure,
			FetchErr:       errors.New("connection reset"),
		}
		ports := testPorts()
		ports.Collection = &mockCollectionService{batch: partial}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleCollect(ctx, nil, CollectInput{Classification: "Coins", Limit: 10})

		require.NoError(t, err)
		assert.Equal(t, "transport_failure", output.Outcome)
		assert.Equal(t, "connection reset", output.FetchError)
	})

	t.Run("unknown classification", func(t *testing.T) {
		collection := &mockCollectionService{batch: batch}
		ports := testPorts()
		ports.Collection = collection
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleCollect(ctx, nil, CollectInput{Classification: "Furniture"})

		assert.ErrorIs(t, err, domain.ErrUnsupportedType)
		assert.Empty(t, collection.classification)
	})
}
