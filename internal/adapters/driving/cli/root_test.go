package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/museo/internal/core/domain"
	"github.com/custodia-labs/museo/internal/core/ports/driving"
)

// mockCollectionService implements driving.CollectionService for CLI tests.
type mockCollectionService struct {
	batch      *domain.ResultSet
	collectErr error
	persistErr error

	classification string
	limit          int
	persisted      *domain.ResultSet
}

func (m *mockCollectionService) Collect(
	_ context.Context, classification string, limit int, progress driving.ProgressFunc,
) (*domain.ResultSet, error) {
	m.classification = classification
	m.limit = limit
	if m.collectErr != nil {
		return nil, m.collectErr
	}
	if progress != nil {
		progress(domain.FetchProgress{Classification: classification, Page: 1, Fetched: len(m.batch.Metadata), Limit: limit})
	}
	return m.batch, nil
}

func (m *mockCollectionService) Persist(_ context.Context, batch *domain.ResultSet) error {
	m.persisted = batch
	if m.persistErr != nil {
		return m.persistErr
	}
	if batch == nil || batch.IsEmpty() {
		return domain.ErrNoData
	}
	return nil
}

// mockQueryService implements driving.QueryService for CLI tests.
type mockQueryService struct {
	catalog []domain.Query
	result  *domain.QueryResult
	err     error
	ran     string
}

func (m *mockQueryService) List() []domain.Query { return m.catalog }

func (m *mockQueryService) Find(n int) (domain.Query, error) {
	if n < 1 || n > len(m.catalog) {
		return domain.Query{}, fmt.Errorf("%w: query %d", domain.ErrNotFound, n)
	}
	return m.catalog[n-1], nil
}

func (m *mockQueryService) Run(_ context.Context, statement string) (*domain.QueryResult, error) {
	m.ran = statement
	return m.result, m.err
}

// mockSettingsService implements driving.SettingsService for CLI tests.
type mockSettingsService struct {
	settings domain.AppSettings
	getErr   error
	setErr   error
	set      map[string]string
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.set == nil {
		m.set = map[string]string{}
	}
	m.set[key] = value
	return nil
}

func (m *mockSettingsService) Keys() []string { return []string{"api.key", "fetch.limit"} }
func (m *mockSettingsService) Path() string   { return "/tmp/museo/config.toml" }

type testServices struct {
	collection *mockCollectionService
	query      *mockQueryService
	settings   *mockSettingsService
}

func int64p(v int64) *int64 { return &v }
func strp(v string) *string { return &v }

func sampleBatch() *domain.ResultSet {
	return &domain.ResultSet{
		BatchID:        "batch-1",
		Classification: "Coins",
		Limit:          2,
		Pages:          1,
		Outcome:        domain.OutcomeLimitReached,
		Relations: domain.Relations{
			Metadata: []domain.ArtifactMetadata{
				{ObjectID: int64p(1), Title: strp("Tetradrachm"), Classification: "Coins"},
				{ObjectID: int64p(2), Title: strp("Denarius"), Classification: "Coins"},
			},
			Media: []domain.ArtifactMedia{
				{ObjectID: int64p(1), ImageURL: strp("https://example.org/1.jpg"), Rank: int64p(1)},
			},
		},
	}
}

// setupTestServices installs mock services and returns a cleanup func that
// restores the previous services and resets command flags.
func setupTestServices() (*testServices, func()) {
	prevCollection, prevQuery, prevSettings := collectionService, queryService, settingsService

	ts := &testServices{
		collection: &mockCollectionService{batch: sampleBatch()},
		query: &mockQueryService{
			catalog: []domain.Query{
				{Question: "How many artifacts are there?", SQL: "SELECT COUNT(*) AS n FROM artifact_metadata;"},
				{Question: "Which colours are most common?", SQL: "SELECT color FROM artifact_colors;"},
			},
			result: &domain.QueryResult{Columns: []string{"n"}, Rows: [][]string{{"2500"}}},
		},
		settings: &mockSettingsService{settings: domain.DefaultAppSettings()},
	}
	SetCollectionService(ts.collection)
	SetQueryService(ts.query)
	SetSettingsService(ts.settings)

	return ts, func() {
		collectionService, queryService, settingsService = prevCollection, prevQuery, prevSettings
		collectLimit, collectSave, collectPreview = 0, false, 0
		queryShowSQL = false
		rootCmd.SetArgs(nil)
	}
}

// execute runs the root command with args and returns its output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "museo", rootCmd.Use)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	if assert.NotNil(t, flag) {
		assert.Equal(t, "v", flag.Shorthand)
		assert.Equal(t, "false", flag.DefValue)
	}
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"collect", "queries", "query", "config", "tui", "mcp", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)

	SetVersion("")
	assert.Equal(t, "1.2.3", version)
}
