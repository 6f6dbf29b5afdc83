package services

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/custodia-labs/museo/internal/core/domain"
	"github.com/custodia-labs/museo/internal/core/ports/driven"
	"github.com/custodia-labs/museo/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyAPIKey            = "api.key"
	KeyAPIBaseURL        = "api.base_url"
	KeyFetchPageSize     = "fetch.page_size"
	KeyFetchLimit        = "fetch.limit"
	KeyFetchRequestsRate = "fetch.requests_per_second"
	KeyStorageDataDir    = "storage.data_dir"
	KeyStorageFileName   = "storage.file_name"
)

// settingKind describes how a key's string value is parsed.
type settingKind int

const (
	kindString settingKind = iota
	kindPositiveInt
	kindNonNegativeFloat
	kindURL
)

var settingKinds = map[string]settingKind{
	KeyAPIKey:            kindString,
	KeyAPIBaseURL:        kindURL,
	KeyFetchPageSize:     kindPositiveInt,
	KeyFetchLimit:        kindPositiveInt,
	KeyFetchRequestsRate: kindNonNegativeFloat,
	KeyStorageDataDir:    kindString,
	KeyStorageFileName:   kindString,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		API: domain.APISettings{
			Key:     s.configStore.GetString(KeyAPIKey),
			BaseURL: s.getString(KeyAPIBaseURL, defaults.API.BaseURL),
		},
		Fetch: domain.FetchSettings{
			PageSize:          s.getPositiveInt(KeyFetchPageSize, defaults.Fetch.PageSize),
			Limit:             s.getPositiveInt(KeyFetchLimit, defaults.Fetch.Limit),
			RequestsPerSecond: s.getNonNegativeFloat(KeyFetchRequestsRate, defaults.Fetch.RequestsPerSecond),
		},
		Storage: domain.StorageSettings{
			DataDir:  s.configStore.GetString(KeyStorageDataDir), // Empty selects the home directory
			FileName: s.getString(KeyStorageFileName, defaults.Storage.FileName),
		},
	}

	return settings, nil
}

// Set parses and stores a single setting.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKinds[key]
	if !ok {
		return fmt.Errorf("%w: setting %q", domain.ErrUnsupportedType, key)
	}

	var stored any
	switch kind {
	case kindString:
		stored = value
	case kindPositiveInt:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		stored = int64(n)
	case kindNonNegativeFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		stored = f
	case kindURL:
		if u, err := url.Parse(value); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: %s must be an absolute URL", domain.ErrInvalidInput, key)
		}
		stored = value
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		KeyAPIKey,
		KeyAPIBaseURL,
		KeyFetchPageSize,
		KeyFetchLimit,
		KeyFetchRequestsRate,
		KeyStorageDataDir,
		KeyStorageFileName,
	}
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	if val := s.configStore.GetInt(key); val > 0 {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getNonNegativeFloat(key string, defaultVal float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	if val := s.configStore.GetFloat(key); val >= 0 {
		return val
	}
	return defaultVal
}
