package entity

import (
	"time"

	"github.com/google/uuid"
)

// ArtifactType identifies the platform-specific rendering of an idea.
type ArtifactType string

const (
	ArtifactTypeBlogPost   ArtifactType = "blog-post"
	ArtifactTypeThread     ArtifactType = "thread"
	ArtifactTypeCarousel   ArtifactType = "carousel"
	ArtifactTypeNewsletter ArtifactType = "newsletter"
	ArtifactTypeEmail      ArtifactType = "email"
	ArtifactTypeShortPost  ArtifactType = "short-post"
	ArtifactTypeComment    ArtifactType = "comment"
)

// ArtifactTypes lists every legal artifact type.
var ArtifactTypes = []ArtifactType{
	ArtifactTypeBlogPost,
	ArtifactTypeThread,
	ArtifactTypeCarousel,
	ArtifactTypeNewsletter,
	ArtifactTypeEmail,
	ArtifactTypeShortPost,
	ArtifactTypeComment,
}

// Valid reports whether t is a member of the artifact type vocabulary.
func (t ArtifactType) Valid() bool {
	for _, v := range ArtifactTypes {
		if t == v {
			return true
		}
	}

	return false
}

// ArtifactStatus is the publication state of an artifact.
type ArtifactStatus string

const (
	ArtifactStatusDraft     ArtifactStatus = "draft"
	ArtifactStatusReady     ArtifactStatus = "ready"
	ArtifactStatusPublished ArtifactStatus = "published"
)

// ArtifactStatuses lists every legal artifact status.
var ArtifactStatuses = []ArtifactStatus{
	ArtifactStatusDraft,
	ArtifactStatusReady,
	ArtifactStatusPublished,
}

// Valid reports whether s is a member of the artifact status vocabulary.
func (s ArtifactStatus) Valid() bool {
	for _, v := range ArtifactStatuses {
		if s == v {
			return true
		}
	}

	return false
}

// ContentArtifact is a derived, platform-specific rendering of an idea.
// Nullable fields use pointers; a nil pointer maps to SQL NULL.
type ContentArtifact struct {
	ID           uuid.UUID
	UserID       uuid.UUID // Owner. Must match the parent idea's owner.
	IdeaID       uuid.UUID // Parent idea, required.
	Title        *string
	Content      string // Body, required.
	ArtifactType ArtifactType
	Platform     *string // Optional target platform, e.g. "bluesky".
	Status       ArtifactStatus

	PlannedPublishDate *time.Time // Scheduled publish date for the timeline view.
	PublishedAt        *time.Time
	PublishedURL       *string

	// Engagement metrics, filled in after publication.
	Impressions *int
	Likes       *int
	Comments    *int
	Shares      *int

	Notes *string

	// Import provenance. Set when the artifact was imported from an external
	// platform; (ImportSource, ImportExternalID) deduplicates re-imports.
	ImportSource     *string
	ImportExternalID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Owner implements Owned.
func (a *ContentArtifact) Owner() uuid.UUID {
	return a.UserID
}
