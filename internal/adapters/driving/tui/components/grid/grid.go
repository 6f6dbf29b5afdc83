// Package grid renders query results and relation previews as bubbles tables.
package grid

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/museo/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/museo/internal/core/domain"
)

const (
	// MaxColumnWidth caps a column so several fit on screen.
	MaxColumnWidth = 32

	minHeight = 3
)

// New builds a focused table for the result. height is the number of
// visible rows.
func New(s *styles.Styles, result *domain.QueryResult, height int) table.Model {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if height < minHeight {
		height = minHeight
	}

	var cols []table.Column
	var rows []table.Row
	if result != nil {
		cols = Columns(result)
		rows = make([]table.Row, 0, len(result.Rows))
		for _, r := range result.Rows {
			// Rows must never be wider than the header.
			if len(r) > len(cols) {
				r = r[:len(cols)]
			}
			rows = append(rows, table.Row(r))
		}
	}

	return table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithStyles(s.Table()),
	)
}

// Columns sizes each column to its widest value, capped at MaxColumnWidth.
func Columns(result *domain.QueryResult) []table.Column {
	cols := make([]table.Column, len(result.Columns))
	for i, name := range result.Columns {
		w := lipgloss.Width(name)
		for _, row := range result.Rows {
			if i < len(row) {
				if cw := lipgloss.Width(row[i]); cw > w {
					w = cw
				}
			}
		}
		if w > MaxColumnWidth {
			w = MaxColumnWidth
		}
		cols[i] = table.Column{Title: name, Width: w}
	}
	return cols
}
