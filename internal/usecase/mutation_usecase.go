// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"encoding/json"
	"time"

	"kindling/internal/domain/entity"
	"kindling/internal/usecase/patch"

	"github.com/google/uuid"
)

// Mutation is one named write operation from the sync engine's push
// protocol. Args are decoded against the operation's input schema before
// any database access.
type Mutation struct {
	ID   int             `json:"id"` // Client-assigned ordinal within the push.
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

// MutationError reports why a single mutation failed.
type MutationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MutationResult reports the outcome of one mutation in a batch. Each
// mutation runs in its own transaction, so one failure does not roll back
// the others.
type MutationResult struct {
	ID    int            `json:"id"`
	Name  string         `json:"name"`
	Error *MutationError `json:"error,omitempty"`
}

// --- Mutator inputs ---

// CreateIdeaInput captures a new idea. Status, content and notes are not
// accepted at create time; they always start at their defaults.
type CreateIdeaInput struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	OneLiner string    `json:"oneLiner" validate:"required,min=1,max=256"`
	Tags     []string  `json:"tags" validate:"omitempty,dive,min=1,max=64"`
}

// UpdateIdeaInput partially updates an idea. Absent fields are untouched.
type UpdateIdeaInput struct {
	ID       uuid.UUID                     `json:"id" validate:"required"`
	OneLiner patch.Field[string]           `json:"oneLiner" validate:"omitnil,min=1,max=256"`
	Status   patch.Field[entity.IdeaStatus] `json:"status" validate:"omitnil,idea_status"`
	Content  patch.Field[string]           `json:"content"`
	Notes    patch.Field[string]           `json:"notes"`
	Tags     patch.Field[[]string]         `json:"tags" validate:"omitnil,dive,min=1,max=64"`
}

// UpsertSettingsInput replaces the caller's voice and branding settings,
// creating the row on first write.
type UpsertSettingsInput struct {
	TargetAudience    string `json:"targetAudience" validate:"max=10000"`
	BrandVoice        string `json:"brandVoice" validate:"max=10000"`
	ContentPillars    string `json:"contentPillars" validate:"max=10000"`
	UniquePerspective string `json:"uniquePerspective" validate:"max=10000"`
}

// CreateArtifactInput captures a new artifact. Status always starts at
// draft; the parent idea must belong to the caller.
type CreateArtifactInput struct {
	ID                 uuid.UUID           `json:"id" validate:"required"`
	IdeaID             uuid.UUID           `json:"ideaId" validate:"required"`
	Title              *string             `json:"title" validate:"omitempty,max=256"`
	Content            string              `json:"content" validate:"required"`
	ArtifactType       entity.ArtifactType `json:"artifactType" validate:"required,artifact_type"`
	Platform           *string             `json:"platform" validate:"omitempty,max=256"`
	PlannedPublishDate *time.Time          `json:"plannedPublishDate"`
	Notes              *string             `json:"notes"`
}

// UpdateArtifactInput partially updates an artifact. Absent fields are
// untouched; explicit null clears nullable columns.
type UpdateArtifactInput struct {
	ID                 uuid.UUID                          `json:"id" validate:"required"`
	Title              patch.Field[string]                `json:"title" validate:"omitnil,max=256"`
	Content            patch.Field[string]                `json:"content" validate:"omitnil,min=1"`
	ArtifactType       patch.Field[entity.ArtifactType]   `json:"artifactType" validate:"omitnil,artifact_type"`
	Platform           patch.Field[string]                `json:"platform" validate:"omitnil,max=256"`
	Status             patch.Field[entity.ArtifactStatus] `json:"status" validate:"omitnil,artifact_status"`
	PlannedPublishDate patch.Field[time.Time]             `json:"plannedPublishDate"`
	PublishedAt        patch.Field[time.Time]             `json:"publishedAt"`
	PublishedURL       patch.Field[string]                `json:"publishedUrl" validate:"omitnil,max=2048"`
	Impressions        patch.Field[int]                   `json:"impressions" validate:"omitnil,min=0"`
	Likes              patch.Field[int]                   `json:"likes" validate:"omitnil,min=0"`
	Comments           patch.Field[int]                   `json:"comments" validate:"omitnil,min=0"`
	Shares             patch.Field[int]                   `json:"shares" validate:"omitnil,min=0"`
	Notes              patch.Field[string]                `json:"notes"`
}

// DeleteArtifactInput identifies the artifact to hard-delete.
type DeleteArtifactInput struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// MutationUsecase is the server-side mutator registry. Each mutation is
// validated, authorized against current row state and applied inside one
// transaction; unknown names fail explicitly.
type MutationUsecase interface {
	PushBatch(ctx context.Context, caller uuid.UUID, mutations []Mutation) []MutationResult
}
