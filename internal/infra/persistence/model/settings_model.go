package model

import (
	"time"

	"github.com/google/uuid"
)

// ContentSettingsModel mirrors the 'content_settings' table. The unique
// index on UserID enforces the one-row-per-user upsert contract.
type ContentSettingsModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	TargetAudience    string    `gorm:"type:text;not null"`
	BrandVoice        string    `gorm:"type:text;not null"`
	ContentPillars    string    `gorm:"type:text;not null"`
	UniquePerspective string    `gorm:"type:text;not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContentSettingsModel) TableName() string {
	return "content_settings"
}
