package model

import (
	"time"

	"github.com/google/uuid"
)

// ContentArtifactModel mirrors the 'content_artifact' table. Nullable columns
// use pointers; (imported_from, external_id) carry import provenance and are
// unique per user so re-imports deduplicate at the schema level.
type ContentArtifactModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	IdeaID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        *string   `gorm:"type:text"`
	Content      string    `gorm:"type:text;not null"`
	ArtifactType string    `gorm:"type:artifact_type;not null"`
	Platform     *string   `gorm:"type:text"`
	Status       string    `gorm:"type:artifact_status;not null;default:draft"`

	PlannedPublishDate *time.Time
	PublishedAt        *time.Time
	PublishedURL       *string `gorm:"column:published_url;type:text"`

	Impressions *int
	Likes       *int
	Comments    *int
	Shares      *int

	Notes *string `gorm:"type:text"`

	ImportedFrom *string `gorm:"column:imported_from;type:text"`
	ExternalID   *string `gorm:"column:external_id;type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContentArtifactModel) TableName() string {
	return "content_artifact"
}
