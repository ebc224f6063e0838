package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'session' table. The primary key is the SHA-256
// hex digest of the bearer token, so the table never stores raw tokens and
// has no generated timestamps.
type SessionModel struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "session"
}
