// Package harvard implements a catalog client for the Harvard Art Museums
// object API.
//
// # Requests
//
// Each page is a single GET against the object endpoint with the query
// parameters apikey, classification, size and page. The response body is a
// JSON document whose "records" array is decoded into [domain.RawRecord]
// values; the "info" block is only logged.
//
// # Failure Policy
//
// The client never retries. Any non-200 status is returned as an [APIError],
// and network or decode failures are wrapped and returned as-is. Deciding
// whether partial data is acceptable is left to the caller.
//
// # Pacing
//
// Requests can be spaced out with Config.RequestsPerSecond, backed by a
// token bucket from golang.org/x/time/rate. Zero leaves requests unpaced.
package harvard
