package harvard

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/museo/internal/core/domain"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Config holds the settings for the Harvard catalog client.
type Config struct {
	// APIKey is sent as the apikey query parameter.
	APIKey string

	// BaseURL is the object endpoint.
	// Default: domain.DefaultBaseURL
	BaseURL string

	// RequestsPerSecond spaces page requests. Zero disables pacing.
	RequestsPerSecond float64

	// Timeout bounds each HTTP request.
	// Default: DefaultTimeout
	Timeout time.Duration
}

// ConfigFromSettings builds a client config from application settings.
func ConfigFromSettings(s domain.AppSettings) Config {
	return Config{
		APIKey:            s.API.Key,
		BaseURL:           s.API.BaseURL,
		RequestsPerSecond: s.Fetch.RequestsPerSecond,
	}
}

// withDefaults fills unset fields and validates the endpoint.
func (c Config) withDefaults() (Config, error) {
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = domain.DefaultBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return c, fmt.Errorf("%w: base url %q", ErrInvalidBaseURL, c.BaseURL)
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RequestsPerSecond < 0 {
		c.RequestsPerSecond = 0
	}
	return c, nil
}
