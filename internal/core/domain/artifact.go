package domain

// Table names used by the relational store.
const (
	TableMetadata = "artifact_metadata"
	TableMedia    = "artifact_media"
	TableColors   = "artifact_colors"
)

// ArtifactMetadata is one row per catalog object.
type ArtifactMetadata struct {
	ObjectID       *int64
	Title          *string
	Culture        *string
	Period         *string
	Technique      *string
	Dated          *string
	Department     *string
	AccessionYear  *int64
	Rank           *int64
	ColorCount     *int64
	MediaCount     *int64
	Classification string
}

// ArtifactMedia is one row per image attached to an object.
type ArtifactMedia struct {
	ObjectID *int64
	ImageURL *string
	Rank     *int64
}

// ArtifactColor is one row per colour swatch attached to an object.
type ArtifactColor struct {
	ObjectID *int64
	Color    *string
	Hue      *string
	Percent  *float64
}

// Relations groups the three normalised tables produced from one batch.
// They are always computed, replaced and persisted together.
type Relations struct {
	Metadata []ArtifactMetadata
	Media    []ArtifactMedia
	Colors   []ArtifactColor
}

// IsEmpty reports whether there is no metadata to persist.
func (r Relations) IsEmpty() bool {
	return len(r.Metadata) == 0
}
