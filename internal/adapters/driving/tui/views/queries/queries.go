// Package queries lists the analytical query catalog and runs entries
// against the store.
package queries

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/museo/internal/adapters/driving/tui/components/grid"
	"github.com/custodia-labs/museo/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/museo/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/museo/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/museo/internal/core/domain"
	"github.com/custodia-labs/museo/internal/core/ports/driving"
)

// View is the queries view.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.QueryService
	ctx     context.Context

	catalog  []domain.Query
	selected int

	running bool
	result  *domain.QueryResult
	results table.Model
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a new queries view.
func NewView(s *styles.Styles, service driving.QueryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		service: service,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
	if service != nil {
		v.catalog = service.List()
	}
	return v
}

// WithContext sets the context used to run queries.
func (v *View) WithContext(ctx context.Context) *View {
	if ctx != nil {
		v.ctx = ctx
	}
	return v
}

// Init initialises the queries view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the queries view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.QueryCompleted:
		v.running = false
		v.err = msg.Err
		v.result = msg.Result
		if msg.Err == nil {
			v.results = grid.New(v.styles, msg.Result, v.resultHeight())
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	// With results on screen, keys scroll the table and esc returns to the list.
	if v.result != nil || v.err != nil {
		if key.Matches(msg, v.keymap.Back) {
			v.result = nil
			v.err = nil
			return v, nil
		}
		if v.result != nil {
			var cmd tea.Cmd
			v.results, cmd = v.results.Update(msg)
			return v, cmd
		}
		return v, nil
	}

	switch {
	case key.Matches(msg, v.keymap.Back):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
	case v.running:
		return v, nil
	case key.Matches(msg, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case key.Matches(msg, v.keymap.Down):
		if v.selected < len(v.catalog)-1 {
			v.selected++
		}
	case key.Matches(msg, v.keymap.Select):
		return v, v.run()
	}
	return v, nil
}

// run executes the selected entry.
func (v *View) run() tea.Cmd {
	if v.service == nil || len(v.catalog) == 0 {
		return nil
	}

	v.running = true
	q := v.catalog[v.selected]
	ctx, service := v.ctx, v.service
	return func() tea.Msg {
		result, err := service.Run(ctx, q.SQL)
		return messages.QueryCompleted{Query: q, Result: result, Err: err}
	}
}

// View renders the queries view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("SQL Queries"))
	b.WriteString("\n\n")

	if len(v.catalog) == 0 {
		b.WriteString(v.styles.Muted.Render("No queries available."))
		return b.String()
	}

	q := v.catalog[v.selected]

	if v.result == nil && v.err == nil {
		b.WriteString(v.renderList())
		b.WriteString("\n")
	} else {
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("%d. %s", v.selected+1, q.Question)))
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Code.Render(q.SQL))
	b.WriteString("\n")

	switch {
	case v.running:
		b.WriteString(v.styles.Muted.Render("Running query..."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("SQL Error: %v", v.err)))
		b.WriteString("\n")
	case v.result != nil:
		b.WriteString(v.results.View())
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%d rows", v.result.RowCount())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.result != nil || v.err != nil {
		b.WriteString(v.styles.Help.Render("[j/k] Scroll  [Esc] Back to queries"))
	} else {
		b.WriteString(v.styles.Help.Render("[j/k] Select  [Enter] Run Query  [Esc] Back"))
	}
	return b.String()
}

// renderList shows a window of the catalog around the selection.
func (v *View) renderList() string {
	visible := v.height - 14
	if visible < 5 {
		visible = 5
	}
	start := 0
	if v.selected >= visible {
		start = v.selected - visible + 1
	}
	end := min(start+visible, len(v.catalog))

	var b strings.Builder
	for i := start; i < end; i++ {
		label := fmt.Sprintf("%2d. %s", i+1, v.catalog[i].Question)
		if i == v.selected {
			b.WriteString("> " + v.styles.Selected.Render(label))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) resultHeight() int {
	return v.height - 12
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the selected catalog entry.
func (v *View) Selected() (domain.Query, bool) {
	if len(v.catalog) == 0 {
		return domain.Query{}, false
	}
	return v.catalog[v.selected], true
}

// Result returns the last query result.
func (v *View) Result() *domain.QueryResult {
	return v.result
}

// Err returns the last query error.
func (v *View) Err() error {
	return v.err
}

// Running reports whether a query is executing.
func (v *View) Running() bool {
	return v.running
}
