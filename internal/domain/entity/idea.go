package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdeaStatus is the lifecycle state of a content idea.
type IdeaStatus string

// Idea lifecycle: inbox -> developing -> ready -> published, with archived
// and cancelled as terminal side-states.
const (
	IdeaStatusInbox      IdeaStatus = "inbox"
	IdeaStatusDeveloping IdeaStatus = "developing"
	IdeaStatusReady      IdeaStatus = "ready"
	IdeaStatusPublished  IdeaStatus = "published"
	IdeaStatusArchived   IdeaStatus = "archived"
	IdeaStatusCancelled  IdeaStatus = "cancelled"
)

// IdeaStatuses lists every legal idea status. The schema, the validation
// layer and the migrations all derive from this single list.
var IdeaStatuses = []IdeaStatus{
	IdeaStatusInbox,
	IdeaStatusDeveloping,
	IdeaStatusReady,
	IdeaStatusPublished,
	IdeaStatusArchived,
	IdeaStatusCancelled,
}

// Valid reports whether s is a member of the idea status vocabulary.
func (s IdeaStatus) Valid() bool {
	for _, v := range IdeaStatuses {
		if s == v {
			return true
		}
	}

	return false
}

// ContentIdea is a captured raw idea owned by exactly one user.
type ContentIdea struct {
	ID        uuid.UUID  // Client-generated UUIDv7 so retried creates deduplicate.
	UserID    uuid.UUID  // Owner. Immutable after creation.
	OneLiner  string     // Short summary, 1-256 characters.
	Status    IdeaStatus // Lifecycle status, defaults to inbox.
	Content   string     // Long-form draft, defaults to empty.
	Notes     string     // Free-form notes, defaults to empty.
	Tags      []string   // Free-form tag set.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Owner implements Owned.
func (i *ContentIdea) Owner() uuid.UUID {
	return i.UserID
}
