package repository

import (
	"context"
	"errors"

	"kindling/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrIdeaNotFound is returned when no content idea exists for the given id.
var ErrIdeaNotFound = errors.New("content idea not found")

// ErrDuplicateID is returned when a create collides with an existing
// primary key. Client-generated ids make retried creates land here.
var ErrDuplicateID = errors.New("duplicate id")

// IdeaRepository persists content ideas. Listing methods filter by owner at
// the predicate level; they never return another user's rows.
type IdeaRepository interface {
	// FindByID retrieves a single idea regardless of owner. Callers are
	// responsible for the ownership check.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContentIdea, error)

	// Create persists a new idea with its client-generated id.
	Create(ctx context.Context, idea *entity.ContentIdea) error

	// Update writes the full idea row.
	Update(ctx context.Context, idea *entity.ContentIdea) error

	// ListByOwner returns all ideas for a user, newest first.
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.ContentIdea, error)

	// ListByOwnerAndStatus returns a user's ideas in one status, newest first.
	ListByOwnerAndStatus(ctx context.Context, owner uuid.UUID, status entity.IdeaStatus) ([]*entity.ContentIdea, error)

	// ListRecentByOwner returns up to limit ideas ordered by most recent update.
	ListRecentByOwner(ctx context.Context, owner uuid.UUID, limit int) ([]*entity.ContentIdea, error)
}
