package domain

// Default settings values.
const (
	DefaultBaseURL     = "https://api.harvardartmuseums.org/object"
	DefaultPageSize    = 25
	DefaultFetchLimit  = 2500
	DefaultDBFileName  = "harvard_artifacts.db"
	DefaultPreviewRows = 10
)

// AppSettings holds the effective application configuration.
type AppSettings struct {
	API     APISettings
	Fetch   FetchSettings
	Storage StorageSettings
}

// APISettings configures the remote catalog endpoint.
type APISettings struct {
	// Key is the catalog access key sent as the apikey parameter.
	Key string

	// BaseURL is the object endpoint.
	BaseURL string
}

// FetchSettings configures pagination.
type FetchSettings struct {
	// PageSize is the number of records requested per page.
	PageSize int

	// Limit is the default number of records to collect.
	Limit int

	// RequestsPerSecond paces page requests. Zero disables pacing.
	RequestsPerSecond float64
}

// StorageSettings configures the local relational store.
type StorageSettings struct {
	// DataDir is the directory holding the database file.
	// Empty means ~/.museo/data.
	DataDir string

	// FileName is the database file name within DataDir.
	FileName string
}

// DefaultAppSettings returns the built-in defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			BaseURL: DefaultBaseURL,
		},
		Fetch: FetchSettings{
			PageSize: DefaultPageSize,
			Limit:    DefaultFetchLimit,
		},
		Storage: StorageSettings{
			FileName: DefaultDBFileName,
		},
	}
}

// MaskedKey returns the API key with all but the last four characters hidden.
func (s APISettings) MaskedKey() string {
	if s.Key == "" {
		return "(not set)"
	}
	if len(s.Key) <= 4 {
		return "****"
	}
	return "****" + s.Key[len(s.Key)-4:]
}
