package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/museo/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/museo/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/museo/internal/core/domain"
	"github.com/custodia-labs/museo/internal/core/ports/driving"
)

func int64p(v int64) *int64 { return &v }

func newTestPorts() *Ports {
	return &Ports{
		Collection: &MockCollectionService{},
		Query: &MockQueryService{Catalog: []domain.Query{
			{Question: "How many artifacts?", SQL: "SELECT COUNT(*) FROM artifact_metadata;"},
		}},
	}
}

func newTestApp(t *testing.T, ports *Ports) *App {
	t.Helper()
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(120, 40)
	return app
}

// run executes cmd and feeds the resulting messages back into the app
// until nothing is left to do. Spinner ticks are dropped.
func run(app *App, cmd tea.Cmd) []tea.Msg {
	var seen []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case spinner.TickMsg, nil:
		default:
			seen = append(seen, msg)
			_, follow := app.Update(msg)
			queue = append(queue, follow)
		}
	}
	return seen
}

func press(app *App, msg tea.KeyMsg) []tea.Msg {
	_, cmd := app.Update(msg)
	return run(app, cmd)
}

func fetchedBatch(classification string, n int) *domain.ResultSet {
	batch := &domain.ResultSet{Classification: classification, Limit: n, Outcome: domain.OutcomeLimitReached}
	for i := 1; i <= n; i++ {
		batch.Metadata = append(batch.Metadata, domain.ArtifactMetadata{
			ObjectID: int64p(int64(i)), Classification: classification,
		})
	}
	return batch
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.Nil(t, app.Batch())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{Query: &MockQueryService{}})

	assert.ErrorIs(t, err, ErrMissingCollectionService)
	assert.Nil(t, app)
}

func TestNewApp_UsesConfiguredLimit(t *testing.T) {
	s := domain.DefaultAppSettings()
	s.Fetch.Limit = 75
	ports := newTestPorts()
	ports.Settings = &MockSettingsService{Settings: &s}

	var got int
	ports.Collection = &MockCollectionService{
		CollectFunc: func(_ context.Context, c string, limit int, _ driving.ProgressFunc) (*domain.ResultSet, error) {
			got = limit
			return fetchedBatch(c, 1), nil
		},
	}

	app := newTestApp(t, ports)
	app.Update(messages.ViewChanged{View: messages.ViewCollect})
	press(app, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 75, got)
}

func TestNewApp_SettingsErrorFallsBackToDefault(t *testing.T) {
	ports := newTestPorts()
	ports.Settings = &MockSettingsService{Err: errors.New("unreadable")}

	app, err := NewApp(ports)

	require.NoError(t, err)
	require.NotNil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	assert.NotNil(t, app.Init())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Nil(t, cmd)
	assert.Equal(t, app, model)
	assert.True(t, app.Ready())
	assert.Equal(t, 100, app.StatusBar().Width())
}

func TestApp_View_NotReady(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t, newTestPorts())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_QuitMessage(t *testing.T) {
	app := newTestApp(t, newTestPorts())

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_MenuNavigation(t *testing.T) {
	tests := []struct {
		downs int
		want  messages.ViewType
	}{
		{0, messages.ViewCollect},
		{1, messages.ViewPreview},
		{2, messages.ViewQueries},
		{3, messages.ViewSettings},
		{4, messages.ViewHelp},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			app := newTestApp(t, newTestPorts())
			for i := 0; i < tt.downs; i++ {
				press(app, tea.KeyMsg{Type: tea.KeyDown})
			}
			press(app, tea.KeyMsg{Type: tea.KeyEnter})

			assert.Equal(t, tt.want, app.CurrentView())
		})
	}
}

func TestApp_EscReturnsToMenu(t *testing.T) {
	views := []messages.ViewType{
		messages.ViewCollect, messages.ViewPreview, messages.ViewQueries,
		messages.ViewSettings, messages.ViewHelp,
	}

	for _, view := range views {
		t.Run(view.String(), func(t *testing.T) {
			app := newTestApp(t, newTestPorts())
			run(app, func() tea.Msg { return messages.ViewChanged{View: view} })
			require.Equal(t, view, app.CurrentView())

			press(app, tea.KeyMsg{Type: tea.KeyEsc})

			assert.Equal(t, messages.ViewMenu, app.CurrentView())
		})
	}
}

func TestApp_FetchUpdatesBatchAndPreview(t *testing.T) {
	ports := newTestPorts()
	ports.Collection = &MockCollectionService{
		CollectFunc: func(_ context.Context, c string, limit int, progress driving.ProgressFunc) (*domain.ResultSet, error) {
			progress(domain.FetchProgress{Classification: c, Page: 1, Fetched: 25, Limit: limit})
			progress(domain.FetchProgress{Classification: c, Page: 2, Fetched: 30, Limit: limit})
			return fetchedBatch(c, 30), nil
		},
	}
	app := newTestApp(t, ports)
	app.Update(messages.ViewChanged{View: messages.ViewCollect})

	seen := press(app, tea.KeyMsg{Type: tea.KeyEnter})

	var progressed int
	for _, msg := range seen {
		if _, ok := msg.(messages.FetchProgressed); ok {
			progressed++
		}
	}
	assert.Equal(t, 2, progressed)

	require.NotNil(t, app.Batch())
	assert.Equal(t, "Coins", app.Batch().Classification)
	assert.Len(t, app.Batch().Metadata, 30)
	assert.Equal(t, 30, app.StatusBar().Records())
	assert.Equal(t, status.StateReady, app.StatusBar().State())
	assert.Contains(t, app.StatusBar().Message(), "fetched 30 Coins records")

	app.Update(messages.ViewChanged{View: messages.ViewPreview})
	assert.Contains(t, app.View(), "First 10 of 30 rows")
}

func TestApp_PartialFetchWarns(t *testing.T) {
	ports := newTestPorts()
	ports.Collection = &MockCollectionService{
		CollectFunc: func(_ context.Context, c string, _ int, _ driving.ProgressFunc) (*domain.ResultSet, error) {
			batch := fetchedBatch(c, 50)
			batch.Outcome = domain.OutcomeTransportFailure
			batch.FetchErr = errors.New("connection reset")
			return batch, nil
		},
	}
	app := newTestApp(t, ports)
	app.Update(messages.ViewChanged{View: messages.ViewCollect})

	press(app, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, status.StateWarning, app.StatusBar().State())
	assert.Contains(t, app.StatusBar().Message(), "connection reset")
	assert.Len(t, app.Batch().Metadata, 50)
}

func TestApp_FetchErrorKeepsPreviousBatch(t *testing.T) {
	app := newTestApp(t, newTestPorts())
	previous := fetchedBatch("Coins", 5)
	app.Update(messages.FetchCompleted{Batch: previous})

	app.Update(messages.FetchCompleted{Err: domain.ErrInvalidInput})

	assert.Equal(t, previous, app.Batch())
	assert.ErrorIs(t, app.Err(), domain.ErrInvalidInput)
	assert.Equal(t, status.StateError, app.StatusBar().State())
}

func TestApp_PersistWithoutBatchWarns(t *testing.T) {
	app := newTestApp(t, newTestPorts())
	app.Update(messages.ViewChanged{View: messages.ViewCollect})

	press(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})

	assert.Equal(t, status.StateWarning, app.StatusBar().State())
	assert.Contains(t, app.View(), "Please collect data first!")
}

func TestApp_PersistAfterFetch(t *testing.T) {
	var persisted *domain.ResultSet
	ports := newTestPorts()
	ports.Collection = &MockCollectionService{
		CollectFunc: func(_ context.Context, c string, _ int, _ driving.ProgressFunc) (*domain.ResultSet, error) {
			return fetchedBatch(c, 3), nil
		},
		PersistFunc: func(_ context.Context, batch *domain.ResultSet) error {
			persisted = batch
			return nil
		},
	}
	app := newTestApp(t, ports)
	app.Update(messages.ViewChanged{View: messages.ViewCollect})
	press(app, tea.KeyMsg{Type: tea.KeyEnter})

	press(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})

	assert.Equal(t, app.Batch(), persisted)
	assert.Equal(t, status.StateReady, app.StatusBar().State())
	assert.Equal(t, "saved to SQLite", app.StatusBar().Message())
}

func TestApp_PersistFailureReported(t *testing.T) {
	app := newTestApp(t, newTestPorts())

	app.Update(messages.PersistCompleted{Err: errors.New("disk full")})

	assert.Equal(t, status.StateError, app.StatusBar().State())
	assert.EqualError(t, app.Err(), "disk full")
}

func TestApp_RunQuery(t *testing.T) {
	ports := newTestPorts()
	var ran string
	ports.Query.(*MockQueryService).RunFunc = func(_ context.Context, statement string) (*domain.QueryResult, error) {
		ran = statement
		return &domain.QueryResult{Columns: []string{"COUNT(*)"}, Rows: [][]string{{"2500"}}}, nil
	}
	app := newTestApp(t, ports)
	app.Update(messages.ViewChanged{View: messages.ViewQueries})

	press(app, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "SELECT COUNT(*) FROM artifact_metadata;", ran)
	assert.Equal(t, "1 rows", app.StatusBar().Message())
	assert.Contains(t, app.View(), "2500")
}

func TestApp_QueryErrorDoesNotTerminate(t *testing.T) {
	ports := newTestPorts()
	ports.Query.(*MockQueryService).RunFunc = func(context.Context, string) (*domain.QueryResult, error) {
		return nil, fmt.Errorf("%w: no such table: artifact_metadata", domain.ErrQueryFailed)
	}
	app := newTestApp(t, ports)
	app.Update(messages.ViewChanged{View: messages.ViewQueries})

	seen := press(app, tea.KeyMsg{Type: tea.KeyEnter})

	for _, msg := range seen {
		assert.NotEqual(t, tea.QuitMsg{}, msg)
	}
	assert.Equal(t, status.StateError, app.StatusBar().State())
	assert.Contains(t, app.View(), "SQL Error:")
}

func TestApp_SettingsViewLoads(t *testing.T) {
	s := domain.DefaultAppSettings()
	s.API.Key = "secret-9876"
	ports := newTestPorts()
	ports.Settings = &MockSettingsService{Settings: &s}
	app := newTestApp(t, ports)

	run(app, func() tea.Msg { return messages.ViewChanged{View: messages.ViewSettings} })

	out := app.View()
	assert.Contains(t, out, "****9876")
	assert.NotContains(t, out, "secret-9876")
}

func TestApp_HelpView(t *testing.T) {
	app := newTestApp(t, newTestPorts())
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	out := app.View()
	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "Save batch to SQLite")
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t, newTestPorts())

	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, app.Err(), "boom")
	assert.Equal(t, status.StateError, app.StatusBar().State())
}

func TestApp_FetchMessagesRoutedOffScreen(t *testing.T) {
	app := newTestApp(t, newTestPorts())
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	app.Update(messages.FetchCompleted{Batch: fetchedBatch("Jewelry", 4)})

	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	require.NotNil(t, app.Batch())
	assert.Equal(t, 4, app.StatusBar().Records())
}
