// Package collect provides the fetch and persist view for the TUI.
//
// A fetch runs in a goroutine and reports back over a channel; each
// FetchProgressed message carries the channel so the view can wait for the
// next one. Pages are still requested one at a time by the service.
package collect

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/museo/internal/adapters/driving/tui/components/grid"
	"github.com/custodia-labs/museo/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/museo/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/museo/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/museo/internal/core/domain"
	"github.com/custodia-labs/museo/internal/core/ports/driving"
)

// SavedPreviewRows is how many metadata rows are shown after a save.
const SavedPreviewRows = 50

// View is the collect view.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.CollectionService
	ctx     context.Context

	classifications []domain.Classification
	selected        int
	limit           int

	bar     progress.Model
	spinner spinner.Model
	current domain.FetchProgress

	running bool
	saving  bool
	batch   *domain.ResultSet
	saved   bool
	saveTbl table.Model
	warning string
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a new collect view. limit is the number of records
// requested per fetch.
func NewView(s *styles.Styles, service driving.CollectionService, limit int) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if limit <= 0 {
		limit = domain.DefaultFetchLimit
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Subtitle

	return &View{
		styles:          s,
		keymap:          keymap.DefaultKeyMap(),
		service:         service,
		ctx:             context.Background(),
		classifications: domain.Classifications(),
		limit:           limit,
		bar:             progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		spinner:         sp,
		width:           80,
		height:          24,
	}
}

// WithContext sets the context used for fetch and persist calls.
func (v *View) WithContext(ctx context.Context) *View {
	if ctx != nil {
		v.ctx = ctx
	}
	return v
}

// Init initialises the collect view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the collect view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.FetchProgressed:
		v.current = msg.Progress
		return v, wait(msg.Stream)

	case messages.FetchCompleted:
		v.running = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.batch = msg.Batch
		v.saved = false
		v.warning = ""
		v.err = nil
		return v, nil

	case messages.PersistCompleted:
		v.saving = false
		switch {
		case errors.Is(msg.Err, domain.ErrNoData):
			v.warning = "Please collect data first!"
		case msg.Err != nil:
			v.err = msg.Err
		default:
			v.saved = true
			v.warning = ""
			preview, _ := msg.Batch.Preview(domain.TableMetadata, SavedPreviewRows)
			v.saveTbl = grid.New(v.styles, preview, v.tableHeight())
		}
		return v, nil

	case spinner.TickMsg:
		if !v.running && !v.saving {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Back):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }

	case key.Matches(msg, v.keymap.Preview):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewPreview} }

	case v.running || v.saving:
		// One action at a time.
		return v, nil

	case key.Matches(msg, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case key.Matches(msg, v.keymap.Down):
		if v.selected < len(v.classifications)-1 {
			v.selected++
		}
		return v, nil

	case key.Matches(msg, v.keymap.Select):
		return v, v.startFetch(v.classifications[v.selected])

	case key.Matches(msg, v.keymap.Persist):
		return v, v.startPersist()
	}

	if v.saved {
		var cmd tea.Cmd
		v.saveTbl, cmd = v.saveTbl.Update(msg)
		return v, cmd
	}
	return v, nil
}

// startFetch launches Collect in the background and returns the command
// that waits for its first message.
func (v *View) startFetch(c domain.Classification) tea.Cmd {
	if v.service == nil {
		v.err = errors.New("collection service not configured")
		return nil
	}

	v.running = true
	v.err = nil
	v.warning = ""
	v.current = domain.FetchProgress{Classification: c.String(), Limit: v.limit}

	stream := make(chan tea.Msg, 1)
	ctx, service, limit := v.ctx, v.service, v.limit
	go func() {
		defer close(stream)
		batch, err := service.Collect(ctx, c.String(), limit, func(p domain.FetchProgress) {
			stream <- messages.FetchProgressed{Progress: p, Stream: stream}
		})
		stream <- messages.FetchCompleted{Batch: batch, Err: err}
	}()

	return tea.Batch(wait(stream), v.spinner.Tick)
}

// startPersist writes the current batch. A missing batch is still passed
// to the service, which refuses it with domain.ErrNoData.
func (v *View) startPersist() tea.Cmd {
	if v.service == nil {
		v.err = errors.New("collection service not configured")
		return nil
	}

	v.saving = true
	v.err = nil
	ctx, service, batch := v.ctx, v.service, v.batch
	persist := func() tea.Msg {
		return messages.PersistCompleted{Batch: batch, Err: service.Persist(ctx, batch)}
	}
	return tea.Batch(persist, v.spinner.Tick)
}

// wait returns a command that delivers the next message from a fetch.
func wait(stream <-chan tea.Msg) tea.Cmd {
	if stream == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-stream
		if !ok {
			return nil
		}
		return msg
	}
}

// View renders the collect view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Collect Data"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Subtitle.Render("Select Classification to fetch data"))
	b.WriteString("\n\n")

	for i, c := range v.classifications {
		if i == v.selected {
			b.WriteString("> " + v.styles.Selected.Render(c.String()))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(c.String()))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case v.running:
		b.WriteString(v.bar.ViewAs(v.current.Fraction()))
		b.WriteString("\n")
		b.WriteString(v.spinner.View())
		b.WriteString(fmt.Sprintf(" Fetching '%s': %d / %d records",
			v.current.Classification, v.current.Fetched, v.current.Limit))
		b.WriteString("\n")
	case v.batch != nil:
		b.WriteString(v.renderBatch())
	}

	if v.saving {
		b.WriteString(v.spinner.View() + " Inserting to SQL...\n")
	}
	if v.warning != "" {
		b.WriteString(v.styles.Warning.Render(v.warning))
		b.WriteString("\n")
	}
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	}
	if v.saved {
		b.WriteString(v.styles.Success.Render("Data inserted to SQLite successfully!"))
		b.WriteString("\n")
		b.WriteString(v.saveTbl.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Classification  [Enter] Collect  [s] Save to SQL  [p] Preview  [Esc] Back"))

	return b.String()
}

func (v *View) renderBatch() string {
	var b strings.Builder
	n := len(v.batch.Metadata)

	b.WriteString(v.bar.ViewAs(float64(n) / float64(max(v.batch.Limit, 1))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Completed fetching '%s' (%d records)\n", v.batch.Classification, n))
	b.WriteString(v.styles.Success.Render(
		fmt.Sprintf("%s data collected successfully! Total records: %d", v.batch.Classification, n)))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Metadata: %d  Media: %d  Colors: %d",
		n, len(v.batch.Media), len(v.batch.Colors))))
	b.WriteString("\n")

	if v.batch.Partial() {
		b.WriteString(v.styles.Warning.Render(
			fmt.Sprintf("Fetch stopped early after %d pages: %v", v.batch.Pages, v.batch.FetchErr)))
		b.WriteString("\n")
		if v.batch.KeyProblem() {
			b.WriteString(v.styles.Muted.Render("Hint: " + domain.KeyHint))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (v *View) tableHeight() int {
	// Leave room for the selector and messages above the table.
	return v.height - 20
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.bar.Width = min(max(width-10, 10), 60)
}

// Batch returns the most recent batch, or nil before the first fetch.
func (v *View) Batch() *domain.ResultSet {
	return v.batch
}

// Running reports whether a fetch is in progress.
func (v *View) Running() bool {
	return v.running
}

// Saving reports whether a persist is in progress.
func (v *View) Saving() bool {
	return v.saving
}

// Saved reports whether the current batch has been persisted.
func (v *View) Saved() bool {
	return v.saved
}

// Selected returns the selected classification.
func (v *View) Selected() domain.Classification {
	return v.classifications[v.selected]
}

// Limit returns the number of records requested per fetch.
func (v *View) Limit() int {
	return v.limit
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Warning returns the last warning.
func (v *View) Warning() string {
	return v.warning
}
