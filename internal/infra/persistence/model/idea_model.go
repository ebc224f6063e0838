package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ContentIdeaModel mirrors the 'content_idea' table. Status maps to the
// idea_status Postgres enum; tags are a native text array.
type ContentIdeaModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	OneLiner  string         `gorm:"type:text;not null"`
	Status    string         `gorm:"type:idea_status;not null;default:inbox"`
	Content   string         `gorm:"type:text;not null"`
	Notes     string         `gorm:"type:text;not null"`
	Tags      pq.StringArray `gorm:"type:text[];not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContentIdeaModel) TableName() string {
	return "content_idea"
}
