package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContentSettings is the one-per-user voice and branding configuration used
// to steer generated drafts. Unique on UserID with upsert semantics.
type ContentSettings struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	TargetAudience    string
	BrandVoice        string
	ContentPillars    string
	UniquePerspective string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Owner implements Owned.
func (s *ContentSettings) Owner() uuid.UUID {
	return s.UserID
}
