package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/museo/internal/core/domain"
)

// maxCellWidth truncates long values such as image URLs in terminal tables.
const maxCellWidth = 40

// printResult renders a result as a bordered table.
func printResult(cmd *cobra.Command, result *domain.QueryResult) {
	if result == nil || len(result.Columns) == 0 {
		cmd.Println("No columns returned.")
		return
	}

	rows := make([][]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = truncate(v, maxCellWidth)
		}
		rows = append(rows, cells)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(result.Columns...).
		Rows(rows...)

	cmd.Println(t.String())
	cmd.Printf("(%d rows)\n", result.RowCount())
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
