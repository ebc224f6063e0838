package repository

import (
	"context"
	"errors"

	"kindling/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrArtifactNotFound is returned when no artifact exists for the given id.
var ErrArtifactNotFound = errors.New("content artifact not found")

// ArtifactRepository persists content artifacts.
type ArtifactRepository interface {
	// FindByID retrieves a single artifact regardless of owner. Callers are
	// responsible for the ownership check.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContentArtifact, error)

	// Create persists a new artifact with its client-generated id.
	Create(ctx context.Context, artifact *entity.ContentArtifact) error

	// Update writes the full artifact row.
	Update(ctx context.Context, artifact *entity.ContentArtifact) error

	// Delete hard-deletes an artifact.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByOwner returns all artifacts for a user, newest first.
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.ContentArtifact, error)

	// ListByIdea returns a user's artifacts for one idea, newest first.
	ListByIdea(ctx context.Context, owner, ideaID uuid.UUID) ([]*entity.ContentArtifact, error)

	// ListScheduledByOwner returns a user's artifacts ordered by planned
	// publish date, soonest first.
	ListScheduledByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.ContentArtifact, error)

	// ListRecentByType returns up to limit artifacts of one type, newest first.
	ListRecentByType(ctx context.Context, owner uuid.UUID, artifactType entity.ArtifactType, limit int) ([]*entity.ContentArtifact, error)

	// FindByImportID looks up an artifact by its import provenance,
	// deduplicating re-imports from external platforms.
	FindByImportID(ctx context.Context, owner uuid.UUID, source, externalID string) (*entity.ContentArtifact, error)
}
