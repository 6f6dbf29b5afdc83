// Package artifact flattens museum catalog records into the metadata,
// media and colour relations.
package artifact

import (
	"github.com/custodia-labs/museo/internal/core/domain"
	"github.com/custodia-labs/museo/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.RecordNormaliser = (*Normaliser)(nil)

// Normaliser splits nested catalog records into flat rows.
type Normaliser struct{}

// NewNormaliser creates a new artifact normaliser.
func NewNormaliser() *Normaliser {
	return &Normaliser{}
}

// Normalise emits one metadata row per record, one media row per image and
// one colour row per colour entry, preserving input order throughout.
// Absent fields stay nil; nothing is defaulted or coerced.
func (n *Normaliser) Normalise(records []domain.RawRecord, classification string) domain.Relations {
	rel := domain.Relations{
		Metadata: make([]domain.ArtifactMetadata, 0, len(records)),
		Media:    []domain.ArtifactMedia{},
		Colors:   []domain.ArtifactColor{},
	}

	for i := range records {
		rec := &records[i]

		rel.Metadata = append(rel.Metadata, metadataRow(rec, classification))

		for _, img := range rec.Images {
			rel.Media = append(rel.Media, domain.ArtifactMedia{
				ObjectID: rec.ObjectID,
				ImageURL: img.BaseImageURL,
				Rank:     img.Rank,
			})
		}

		for _, c := range rec.Colors {
			rel.Colors = append(rel.Colors, domain.ArtifactColor{
				ObjectID: rec.ObjectID,
				Color:    c.Color,
				Hue:      c.Hue,
				Percent:  c.Percent,
			})
		}
	}

	return rel
}

// metadataRow copies the scalar fields of a record.
// The classification comes from the caller, never from the record.
func metadataRow(rec *domain.RawRecord, classification string) domain.ArtifactMetadata {
	return domain.ArtifactMetadata{
		ObjectID:       rec.ObjectID,
		Title:          rec.Title,
		Culture:        rec.Culture,
		Period:         rec.Period,
		Technique:      rec.Technique,
		Dated:          rec.Dated,
		Department:     rec.Department,
		AccessionYear:  rec.AccessionYear,
		Rank:           rec.Rank,
		ColorCount:     rec.ColorCount,
		MediaCount:     rec.MediaCount,
		Classification: classification,
	}
}
