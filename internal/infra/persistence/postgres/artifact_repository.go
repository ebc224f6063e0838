package postgres

import (
	"context"

	"kindling/internal/domain/entity"
	domainerrors "kindling/internal/domain/errors"
	"kindling/internal/domain/repository"
	"kindling/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// artifactRepository implements the domain's ArtifactRepository interface using GORM.
type artifactRepository struct {
	db *gorm.DB
}

// NewArtifactRepository is the constructor for artifactRepository.
func NewArtifactRepository(db *gorm.DB) repository.ArtifactRepository {
	return &artifactRepository{db: db}
}

// FindByID retrieves a single artifact regardless of owner.
func (repo *artifactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContentArtifact, error) {
	var artifactM model.ContentArtifactModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&artifactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArtifactNotFound
		}

		return nil, errors.Wrap(err, "failed to find artifact by id")
	}

	return toArtifactDomain(&artifactM), nil
}

// Create persists a new artifact with its client-generated id.
func (repo *artifactRepository) Create(ctx context.Context, artifact *entity.ContentArtifact) error {
	artifactM := fromArtifactDomain(artifact)

	if err := repo.db.WithContext(ctx).Create(artifactM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateID
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid parent idea reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create artifact")
	}

	return nil
}

// Update writes the full artifact row.
func (repo *artifactRepository) Update(ctx context.Context, artifact *entity.ContentArtifact) error {
	artifactM := fromArtifactDomain(artifact)

	// Save skips zero-valued fields on updates unless the full struct is
	// written; pointers keep NULL round-trips intact.
	if err := repo.db.WithContext(ctx).Save(artifactM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update artifact")
	}

	return nil
}

// Delete hard-deletes an artifact.
func (repo *artifactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ContentArtifactModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete artifact")
	}

	return nil
}

// ListByOwner returns all artifacts for a user, newest first.
func (repo *artifactRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.ContentArtifact, error) {
	var artifactMs []*model.ContentArtifactModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("created_at DESC").
		Find(&artifactMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list artifacts by owner")
	}

	return toArtifactDomains(artifactMs), nil
}

// ListByIdea returns a user's artifacts for one idea, newest first.
func (repo *artifactRepository) ListByIdea(ctx context.Context, owner, ideaID uuid.UUID) ([]*entity.ContentArtifact, error) {
	var artifactMs []*model.ContentArtifactModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND idea_id = ?", owner, ideaID).
		Order("created_at DESC").
		Find(&artifactMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list artifacts by idea")
	}

	return toArtifactDomains(artifactMs), nil
}

// ListScheduledByOwner returns a user's artifacts that have a planned publish
// date, soonest first.
func (repo *artifactRepository) ListScheduledByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.ContentArtifact, error) {
	var artifactMs []*model.ContentArtifactModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND planned_publish_date IS NOT NULL", owner).
		Order("planned_publish_date ASC").
		Find(&artifactMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list scheduled artifacts")
	}

	return toArtifactDomains(artifactMs), nil
}

// ListRecentByType returns up to limit artifacts of one type, newest first.
func (repo *artifactRepository) ListRecentByType(ctx context.Context, owner uuid.UUID, artifactType entity.ArtifactType, limit int) ([]*entity.ContentArtifact, error) {
	var artifactMs []*model.ContentArtifactModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND artifact_type = ?", owner, string(artifactType)).
		Order("created_at DESC").
		Limit(limit).
		Find(&artifactMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent artifacts by type")
	}

	return toArtifactDomains(artifactMs), nil
}

// FindByImportID looks up an artifact by its import provenance.
func (repo *artifactRepository) FindByImportID(ctx context.Context, owner uuid.UUID, source, externalID string) (*entity.ContentArtifact, error) {
	var artifactM model.ContentArtifactModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND imported_from = ? AND external_id = ?", owner, source, externalID).
		First(&artifactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArtifactNotFound
		}

		return nil, errors.Wrap(err, "failed to find artifact by import id")
	}

	return toArtifactDomain(&artifactM), nil
}

// --- Mapper Functions ---

// toArtifactDomain converts a GORM ContentArtifactModel to a domain entity.
func toArtifactDomain(data *model.ContentArtifactModel) *entity.ContentArtifact {
	if data == nil {
		return nil
	}

	return &entity.ContentArtifact{
		ID:                 data.ID,
		UserID:             data.UserID,
		IdeaID:             data.IdeaID,
		Title:              data.Title,
		Content:            data.Content,
		ArtifactType:       entity.ArtifactType(data.ArtifactType),
		Platform:           data.Platform,
		Status:             entity.ArtifactStatus(data.Status),
		PlannedPublishDate: data.PlannedPublishDate,
		PublishedAt:        data.PublishedAt,
		PublishedURL:       data.PublishedURL,
		Impressions:        data.Impressions,
		Likes:              data.Likes,
		Comments:           data.Comments,
		Shares:             data.Shares,
		Notes:              data.Notes,
		ImportSource:       data.ImportedFrom,
		ImportExternalID:   data.ExternalID,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toArtifactDomains(data []*model.ContentArtifactModel) []*entity.ContentArtifact {
	artifacts := make([]*entity.ContentArtifact, 0, len(data))
	for _, artifactM := range data {
		artifacts = append(artifacts, toArtifactDomain(artifactM))
	}

	return artifacts
}

// fromArtifactDomain converts a domain entity to a GORM model for persistence.
func fromArtifactDomain(data *entity.ContentArtifact) *model.ContentArtifactModel {
	if data == nil {
		return nil
	}

	return &model.ContentArtifactModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		IdeaID:             data.IdeaID,
		Title:              data.Title,
		Content:            data.Content,
		ArtifactType:       string(data.ArtifactType),
		Platform:           data.Platform,
		Status:             string(data.Status),
		PlannedPublishDate: data.PlannedPublishDate,
		PublishedAt:        data.PublishedAt,
		PublishedURL:       data.PublishedURL,
		Impressions:        data.Impressions,
		Likes:              data.Likes,
		Comments:           data.Comments,
		Shares:             data.Shares,
		Notes:              data.Notes,
		ImportedFrom:       data.ImportSource,
		ExternalID:         data.ImportExternalID,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
