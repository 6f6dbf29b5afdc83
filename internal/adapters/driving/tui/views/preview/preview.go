// Package preview shows the first rows of each relation held in memory.
package preview

import (
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
)

// tables lists the relations in display order with their labels.
var tables = []struct {
	name  string
	label string
	empty string
}{
	{domain.TableMetadata, "Metadata", "No metadata loaded yet."},
	{domain.TableMedia, "Media", "No media data loaded yet."},
	{domain.TableColors, "Colors", "No color data loaded yet."},
}

// View is the preview view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	rows   int

	batch  *domain.ResultSet
	active int
	grids  []table.Model
	counts []int

	width  int
	height int
	ready  bool
}

// NewView creates a new preview view showing up to rows rows per relation.
func NewView(s *styles.Styles, rows int) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if rows <= 0 {
		rows = domain.DefaultPreviewRows
	}
	return &View{
		styles: s,
		keymap: keymap.DefaultKeyMap(),
		rows:   rows,
		width:  80,
		height: 24,
	}
}

// Init initialises the preview view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetBatch replaces the previewed batch. Nil clears it.
func (v *View) SetBatch(batch *domain.ResultSet) {
	v.batch = batch
	v.grids = nil
	v.counts = nil
	if batch == nil {
		return
	}
	for _, t := range tables {
		res, err := batch.Preview(t.name, v.rows)
		if err != nil {
			continue
		}
		v.grids = append(v.grids, grid.New(v.styles, res, v.rows))
		v.counts = append(v.counts, res.RowCount())
	}
}

// Update handles messages for the preview view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Back):
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
		case key.Matches(msg, v.keymap.NextTable):
			v.active = (v.active + 1) % len(tables)
			return v, nil
		}
		if v.active < len(v.grids) {
			var cmd tea.Cmd
			v.grids[v.active], cmd = v.grids[v.active].Update(msg)
			return v, cmd
		}
	}
	return v, nil
}

// View renders the preview.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("View Metadata, Media, and Color tables"))
	b.WriteString("\n\n")

	tabs := make([]string, len(tables))
	for i, t := range tables {
		if i == v.active {
			tabs[i] = v.styles.Selected.Render(" " + t.label + " ")
		} else {
			tabs[i] = v.styles.Muted.Render(" " + t.label + " ")
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	t := tables[v.active]
	switch {
	case v.batch == nil || v.active >= len(v.counts) || v.counts[v.active] == 0:
		b.WriteString(v.styles.Muted.Render(t.empty))
	default:
		b.WriteString(v.grids[v.active].View())
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("First %d of %d rows from batch %s",
			v.counts[v.active], v.total(t.name), v.batch.Classification)))
	}
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[Tab] Next table  [j/k] Scroll  [Esc] Back"))
	return b.String()
}

func (v *View) total(table string) int {
	switch table {
	case domain.TableMedia:
		return len(v.batch.Media)
	case domain.TableColors:
		return len(v.batch.Colors)
	default:
		return len(v.batch.Metadata)
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Active returns the name of the relation on screen.
func (v *View) Active() string {
	return tables[v.active].name
}
