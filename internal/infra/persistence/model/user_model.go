// Package model contains the GORM persistence models mirroring the database
// schema. Mapping to and from domain entities happens in the repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'user' table. IDs are client-side UUIDv7; GitHubID
// is the provider-assigned account id and is unique across all users.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	GitHubID  int64     `gorm:"column:github_id;unique;not null"`
	Username  string    `gorm:"type:text;not null"`
	Email     string    `gorm:"type:text"`
	AvatarURL string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "user"
}
