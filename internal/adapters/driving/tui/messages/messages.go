// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/museo/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewCollect selects a classification, fetches and persists.
	ViewCollect
	// ViewPreview shows the first rows of each relation in memory.
	ViewPreview
	// ViewQueries lists and runs catalog queries.
	ViewQueries
	// ViewSettings shows the effective settings.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewCollect:
		return "collect"
	case ViewPreview:
		return "preview"
	case ViewQueries:
		return "queries"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// FetchStarted signals a fetch began for a classification.
type FetchStarted struct {
	Classification string
	Limit          int
}

// FetchProgressed carries advisory progress after each fetched page.
// Stream delivers the next message of the same fetch.
type FetchProgressed struct {
	Progress domain.FetchProgress
	Stream   <-chan tea.Msg
}

// FetchCompleted carries the new batch, or the precondition error that
// prevented the fetch from starting.
type FetchCompleted struct {
	Batch *domain.ResultSet
	Err   error
}

// PersistCompleted signals the batch was written to the store.
type PersistCompleted struct {
	Batch *domain.ResultSet
	Err   error
}

// QueryCompleted carries the result of running a catalog query.
type QueryCompleted struct {
	Query  domain.Query
	Result *domain.QueryResult
	Err    error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
