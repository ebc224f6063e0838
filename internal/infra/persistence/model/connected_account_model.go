package model

import (
	"time"

	"github.com/google/uuid"
)

// ConnectedAccountModel mirrors the 'connected_account' table. Token columns
// hold AES-256-GCM ciphertext, never plaintext credentials. The composite
// unique index keeps at most one account per (user, provider).
type ConnectedAccountModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_connected_account_user_provider"`
	Provider          string     `gorm:"type:account_provider;not null;uniqueIndex:idx_connected_account_user_provider"`
	ProviderAccountID string     `gorm:"column:provider_account_id;type:text;not null"`
	Username          string     `gorm:"type:text;not null"`
	AccessToken       string     `gorm:"type:text;not null"`
	RefreshToken      *string `gorm:"type:text"`
	ExpiresAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConnectedAccountModel) TableName() string {
	return "connected_account"
}
