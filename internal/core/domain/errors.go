package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown classification or setting key.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNoData indicates a persist was attempted before any metadata was collected.
	ErrNoData = errors.New("no data available to migrate")

	// ErrQueryFailed indicates a catalog statement could not be executed.
	// Wraps the underlying driver error (bad SQL, missing table).
	ErrQueryFailed = errors.New("query failed")

	// ErrMissingAPIKey indicates no catalog access key is configured.
	ErrMissingAPIKey = errors.New("catalog API key not configured")

	// ErrUnauthorized indicates the catalog rejected the configured API key.
	ErrUnauthorized = errors.New("catalog rejected the API key")

	// ErrFetchInProgress indicates a collect is already running.
	ErrFetchInProgress = errors.New("fetch in progress")
)
