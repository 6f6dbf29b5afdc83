package driven

import "github.com/custodia-labs/museo/internal/core/domain"

// RecordNormaliser transforms raw catalog records into flat relations.
// Implementations must be pure: no I/O, output order follows input order.
type RecordNormaliser interface {
	// Normalise splits records into metadata, media and colour rows.
	// Every metadata row is tagged with the supplied classification.
	Normalise(records []domain.RawRecord, classification string) domain.Relations
}
