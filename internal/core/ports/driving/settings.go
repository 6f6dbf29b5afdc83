package driving

import "github.com/custodia-labs/museo/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, with defaults applied.
	Get() (*domain.AppSettings, error)

	// Set updates a single setting by its dotted key (e.g. "fetch.limit").
	Set(key, value string) error

	// Keys returns the recognised setting keys.
	Keys() []string

	// Path returns where settings are persisted.
	Path() string
}
