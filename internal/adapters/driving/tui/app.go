package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/museo/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/museo/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/museo/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/museo/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/museo/internal/adapters/driving/tui/views/collect"
	"github.com/custodia-labs/museo/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/museo/internal/adapters/driving/tui/views/preview"
	"github.com/custodia-labs/museo/internal/adapters/driving/tui/views/queries"
	"github.com/custodia-labs/museo/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/museo/internal/core/domain"
	"github.com/custodia-labs/museo/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView     *menu.View
	collectView  *collect.View
	previewView  *preview.View
	queriesView  *queries.View
	settingsView *settings.View
	statusBar    *status.Bar

	// batch is the result set currently held in memory.
	batch *domain.ResultSet

	currentView messages.ViewType
	err         error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	limit := domain.DefaultFetchLimit
	if ports.Settings != nil {
		if s, err := ports.Settings.Get(); err == nil && s.Fetch.Limit > 0 {
			limit = s.Fetch.Limit
		} else if err != nil {
			logger.Warn("loading settings for TUI: %v", err)
		}
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		menuView:     menu.NewView(s),
		collectView:  collect.NewView(s, ports.Collection, limit),
		previewView:  preview.NewView(s, domain.DefaultPreviewRows),
		queriesView:  queries.NewView(s, ports.Query),
		settingsView: settings.NewView(s, ports.Settings),
		statusBar:    status.NewBar(s, km),
		currentView:  messages.ViewMenu,
	}, nil
}

// WithContext sets the context used by fetches and queries.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx == nil {
		return a
	}
	a.ctx = ctx
	a.collectView.WithContext(ctx)
	a.queriesView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("museo - Harvard Artifacts"),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo,funlen // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.updateActive(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		a.statusBar.SetBindings(nil)
		switch msg.View {
		case messages.ViewCollect:
			a.statusBar.SetBindings(a.keymap.CollectHelp())
		case messages.ViewSettings:
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewPreview, messages.ViewQueries, messages.ViewHelp:
		}
		return a, nil

	// Fetch and persist results always go to the collect view, whatever is
	// on screen when they arrive.
	case messages.FetchProgressed:
		a.collectView, cmd = a.collectView.Update(msg)
		p := msg.Progress
		a.statusBar.Set(status.StateFetching,
			fmt.Sprintf("%s page %d: %d/%d", p.Classification, p.Page, p.Fetched, p.Limit))
		return a, cmd

	case messages.FetchCompleted:
		a.collectView, cmd = a.collectView.Update(msg)
		a.onFetchCompleted(msg)
		return a, cmd

	case messages.PersistCompleted:
		a.collectView, cmd = a.collectView.Update(msg)
		switch {
		case errors.Is(msg.Err, domain.ErrNoData):
			a.statusBar.Set(status.StateWarning, "nothing to save")
		case msg.Err != nil:
			a.err = msg.Err
			a.statusBar.Set(status.StateError, msg.Err.Error())
		default:
			a.statusBar.Set(status.StateReady, "saved to SQLite")
		}
		return a, cmd

	case spinner.TickMsg:
		a.collectView, cmd = a.collectView.Update(msg)
		return a, cmd

	case messages.QueryCompleted:
		a.queriesView, cmd = a.queriesView.Update(msg)
		if msg.Err != nil {
			a.statusBar.Set(status.StateError, "query failed")
		} else {
			a.statusBar.Set(status.StateReady, fmt.Sprintf("%d rows", msg.Result.RowCount()))
		}
		return a, cmd

	case messages.SettingsLoaded:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if msg.Err != nil {
			a.statusBar.Set(status.StateError, msg.Err.Error())
		}
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.updateActive(msg)
}

// updateActive forwards msg to the view on screen.
func (a *App) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewCollect:
		a.collectView, cmd = a.collectView.Update(msg)
		switch {
		case a.collectView.Running():
			a.statusBar.Set(status.StateFetching, "fetching "+a.collectView.Selected().String())
		case a.collectView.Saving():
			a.statusBar.Set(status.StateSaving, "writing to SQLite")
		}
	case messages.ViewPreview:
		a.previewView, cmd = a.previewView.Update(msg)
	case messages.ViewQueries:
		a.queriesView, cmd = a.queriesView.Update(msg)
		if a.queriesView.Running() {
			a.statusBar.Set(status.StateQuerying, "running query")
		}
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		if km, ok := msg.(tea.KeyMsg); ok && km.Type == tea.KeyEsc {
			a.currentView = messages.ViewMenu
		}
	}
	return cmd
}

func (a *App) onFetchCompleted(msg messages.FetchCompleted) {
	if msg.Err != nil {
		a.err = msg.Err
		a.statusBar.Set(status.StateError, msg.Err.Error())
		return
	}
	if msg.Batch == nil {
		return
	}

	a.batch = msg.Batch
	a.err = nil
	a.previewView.SetBatch(msg.Batch)
	a.statusBar.SetRecords(len(msg.Batch.Metadata))

	if msg.Batch.Partial() {
		a.statusBar.Set(status.StateWarning, fmt.Sprintf("partial fetch: %v", msg.Batch.FetchErr))
		return
	}
	a.statusBar.Set(status.StateReady,
		fmt.Sprintf("fetched %d %s records", len(msg.Batch.Metadata), msg.Batch.Classification))
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewCollect:
		body = a.collectView.View()
	case messages.ViewPreview:
		body = a.previewView.View()
	case messages.ViewQueries:
		body = a.queriesView.View()
	case messages.ViewSettings:
		body = a.settingsView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.menuView.View()
	}
	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Collect:
  j/k, ↑/↓    Choose classification
  enter       Fetch records
  s           Save batch to SQLite
  p           Preview batch

Preview:
  tab         Next table
  j/k, ↑/↓    Scroll rows

Queries:
  j/k, ↑/↓    Choose query
  enter       Run query
  esc         Back to list

` + a.styles.Help.Render("[esc] back to menu")
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Batch returns the result set held in memory, or nil before the first fetch.
func (a *App) Batch() *domain.ResultSet {
	return a.batch
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// StatusBar returns the status bar.
func (a *App) StatusBar() *status.Bar {
	return a.statusBar
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions. One line is kept for the
// status bar.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	body := max(height-1, 1)
	a.menuView.SetDimensions(width, body)
	a.collectView.SetDimensions(width, body)
	a.previewView.SetDimensions(width, body)
	a.queriesView.SetDimensions(width, body)
	a.settingsView.SetDimensions(width, body)
	a.statusBar.SetWidth(width)
}
