package usecase

import (
	"context"
	"encoding/json"

	"kindling/internal/domain/entity"

	"github.com/google/uuid"
)

// Query names understood by the query registry. Every query is scoped to
// the calling identity at the predicate level; a client can never name
// another user's rows.
const (
	QueryAllIdeas               = "allIdeas"
	QueryInboxIdeas             = "inboxIdeas"
	QueryIdeaByID               = "ideaById"
	QueryArtifactsByIdeaID      = "artifactsByIdeaId"
	QueryArtifactByID           = "artifactById"
	QueryUserSettings           = "userSettings"
	QueryScheduledArtifacts     = "scheduledArtifacts"
	QueryRecentArtifactsByType  = "recentArtifactsByType"
	QueryRecentIdeasWithContent = "recentIdeasWithContent"
	QueryAllArtifacts           = "allArtifacts"
)

// IDArgs parameterizes the by-id queries.
type IDArgs struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// ArtifactTypeArgs parameterizes recentArtifactsByType.
type ArtifactTypeArgs struct {
	ArtifactType entity.ArtifactType `json:"artifactType" validate:"required,artifact_type"`
}

// QueryUsecase is the server-side query registry: named, validated,
// parameterized read-only projections used to hydrate the client cache.
type QueryUsecase interface {
	// Execute runs the named query for the caller and returns the
	// materialized row set. Unknown names fail explicitly.
	Execute(ctx context.Context, caller uuid.UUID, name string, args json.RawMessage) (any, error)
}
