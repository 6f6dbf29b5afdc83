// Package settings provides the read-only settings view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/museo/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/museo/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/museo/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/museo/internal/core/domain"
	"github.com/custodia-labs/museo/internal/core/ports/driving"
)

var errNoService = errors.New("settings service not available")

// View shows the effective settings.
type View struct {
	styles          *styles.Styles
	keymap          *keymap.KeyMap
	settingsService driving.SettingsService

	settings *domain.AppSettings
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:          s,
		keymap:          keymap.DefaultKeyMap(),
		settingsService: settingsService,
	}
}

// Init loads the current settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

func (v *View) loadSettings() tea.Cmd {
	service := v.settingsService
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsLoaded{Err: errNoService}
		}
		settings, err := service.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.SettingsLoaded:
		v.err = msg.Err
		if msg.Err == nil {
			v.settings = msg.Settings
		}

	case tea.KeyMsg:
		if key.Matches(msg, v.keymap.Back) {
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
		}
	}
	return v, nil
}

// View renders the settings view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	case v.settings == nil:
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		b.WriteString("\n")
	default:
		b.WriteString(v.renderSettings())
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("Edit with: museo config set <key> <value>  [Esc] Back"))
	return b.String()
}

func (v *View) renderSettings() string {
	s := v.settings
	var b strings.Builder

	section := func(name string) {
		b.WriteString(v.styles.Subtitle.Render(name))
		b.WriteString("\n")
	}
	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %-22s %s\n", label, v.styles.Normal.Render(value)))
	}

	section("API")
	row("Key", s.API.MaskedKey())
	row("Base URL", s.API.BaseURL)
	if s.API.Key == "" {
		b.WriteString("  " + v.styles.Warning.Render("No API key set. Use MUSEO_API_KEY or config set api.key."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	section("Fetch")
	row("Page size", fmt.Sprintf("%d", s.Fetch.PageSize))
	row("Default limit", fmt.Sprintf("%d", s.Fetch.Limit))
	pacing := "unpaced"
	if s.Fetch.RequestsPerSecond > 0 {
		pacing = fmt.Sprintf("%g req/s", s.Fetch.RequestsPerSecond)
	}
	row("Pacing", pacing)
	b.WriteString("\n")

	section("Storage")
	dataDir := s.Storage.DataDir
	if dataDir == "" {
		dataDir = "~/.museo/data"
	}
	row("Data directory", dataDir)
	row("Database file", s.Storage.FileName)

	if v.settingsService != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Config file: " + v.settingsService.Path()))
		b.WriteString("\n")
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Settings returns the loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
