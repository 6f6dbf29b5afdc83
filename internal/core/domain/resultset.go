package domain

import (
	"errors"
	"time"
)

// FetchOutcome describes why pagination stopped.
type FetchOutcome int

const (
	// OutcomeLimitReached means the requested number of records was collected.
	OutcomeLimitReached FetchOutcome = iota

	// OutcomeSourceExhausted means the catalog ran out of records first.
	OutcomeSourceExhausted

	// OutcomeTransportFailure means a page request failed; the batch holds
	// whatever was accumulated before the failure.
	OutcomeTransportFailure
)

// String returns the string representation of the outcome.
func (o FetchOutcome) String() string {
	switch o {
	case OutcomeLimitReached:
		return "limit_reached"
	case OutcomeSourceExhausted:
		return "source_exhausted"
	case OutcomeTransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// FetchProgress is reported after each page. Advisory only.
type FetchProgress struct {
	Classification string
	Page           int
	Fetched        int
	Limit          int
}

// Fraction returns fetched/limit clamped to [0, 1].
func (p FetchProgress) Fraction() float64 {
	if p.Limit <= 0 {
		return 0
	}
	f := float64(p.Fetched) / float64(p.Limit)
	if f > 1 {
		return 1
	}
	return f
}

// ResultSet is one fetch batch: the records collected for a classification
// and the three relations normalised from them.
// A new fetch produces a new ResultSet; existing ones are never mutated.
type ResultSet struct {
	// BatchID uniquely identifies this fetch.
	BatchID string

	// Classification is the filter the batch was fetched under.
	Classification string

	// Limit is the requested record count.
	Limit int

	// Pages is the number of successful page requests.
	Pages int

	// Outcome reports why pagination stopped.
	Outcome FetchOutcome

	// FetchErr is the cause when Outcome is OutcomeTransportFailure.
	FetchErr error

	// FetchedAt is when the batch completed.
	FetchedAt time.Time

	Relations
}

// Partial reports whether fewer records than requested were collected
// because of a transport failure.
func (r *ResultSet) Partial() bool {
	return r.Outcome == OutcomeTransportFailure
}

// KeyProblem reports whether the fetch stopped because the API key is
// missing or was rejected.
func (r *ResultSet) KeyProblem() bool {
	return errors.Is(r.FetchErr, ErrMissingAPIKey) || errors.Is(r.FetchErr, ErrUnauthorized)
}

// KeyHint is shown alongside a fetch that stopped on a key problem.
const KeyHint = "check api.key with 'museo config set api.key <key>' or set MUSEO_API_KEY"
