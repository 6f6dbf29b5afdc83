package harvard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/museo/internal/core/domain"
	"github.com/custodia-labs/museo/internal/core/ports/driven"
	"github.com/custodia-labs/museo/internal/logger"
)

// maxErrorBody caps how much of an error response is kept for messages.
const maxErrorBody = 512

// Ensure Client implements the interface.
var _ driven.CatalogClient = (*Client)(nil)

// objectResponse is the body of GET /object.
type objectResponse struct {
	Info    responseInfo       `json:"info"`
	Records []domain.RawRecord `json:"records"`
}

// responseInfo is the pagination block of a response.
type responseInfo struct {
	TotalRecords int    `json:"totalrecords"`
	Pages        int    `json:"pages"`
	Page         int    `json:"page"`
	Next         string `json:"next"`
}

// errorResponse is the body the API sends with some error statuses.
type errorResponse struct {
	Error string `json:"error"`
}

// Client reads object pages from the Harvard Art Museums API.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	pacer   *rate.Limiter
}

// NewClient creates a new catalog client.
func NewClient(cfg Config) (*Client, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		pacer:   rate.NewLimiter(limit, 1),
	}, nil
}

// FetchPage requests a single page of records for a classification.
func (c *Client) FetchPage(ctx context.Context, classification string, page, size int) (*domain.Page, error) {
	if c.apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}
	if page < 1 || size < 1 {
		return nil, fmt.Errorf("%w: page=%d size=%d", domain.ErrInvalidInput, page, size)
	}

	if err := c.pacer.Wait(ctx); err != nil {
		return nil, fmt.Errorf("pacing wait: %w", err)
	}

	reqURL, err := c.pageURL(classification, page, size)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp, req.URL)
	}

	var body objectResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode page %d: %w", page, err)
	}

	logger.Debug("Page %d/%d: %d records (total %d)",
		page, body.Info.Pages, len(body.Records), body.Info.TotalRecords)

	return &domain.Page{Number: page, Records: body.Records}, nil
}

// pageURL builds the request URL, keeping any query already on the base.
func (c *Client) pageURL(classification string, page, size int) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	q := u.Query()
	q.Set("apikey", c.apiKey)
	q.Set("classification", classification)
	q.Set("size", strconv.Itoa(size))
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// apiError converts a non-200 response into an APIError.
// The API key is stripped from the reported URL.
func apiError(resp *http.Response, requested *url.URL) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	message := strings.TrimSpace(string(raw))
	var parsed errorResponse
	if json.Unmarshal(raw, &parsed) == nil && parsed.Error != "" {
		message = parsed.Error
	}

	u := *requested
	q := u.Query()
	q.Del("apikey")
	u.RawQuery = q.Encode()

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
		URL:        u.String(),
	}
}
