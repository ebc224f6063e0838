package postgres

import (
	"context"

	"kindling/internal/domain/entity"
	domainerrors "kindling/internal/domain/errors"
	"kindling/internal/domain/repository"
	"kindling/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ideaRepository implements the domain's IdeaRepository interface using GORM.
type ideaRepository struct {
	db *gorm.DB
}

// NewIdeaRepository is the constructor for ideaRepository.
func NewIdeaRepository(db *gorm.DB) repository.IdeaRepository {
	return &ideaRepository{db: db}
}

// FindByID retrieves a single idea regardless of owner.
func (repo *ideaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContentIdea, error) {
	var ideaM model.ContentIdeaModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&ideaM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdeaNotFound
		}

		return nil, errors.Wrap(err, "failed to find idea by id")
	}

	return toIdeaDomain(&ideaM), nil
}

// Create persists a new idea with its client-generated id.
func (repo *ideaRepository) Create(ctx context.Context, idea *entity.ContentIdea) error {
	ideaM := fromIdeaDomain(idea)

	if err := repo.db.WithContext(ctx).Create(ideaM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateID
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid idea owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create idea")
	}

	return nil
}

// Update writes the full idea row.
func (repo *ideaRepository) Update(ctx context.Context, idea *entity.ContentIdea) error {
	ideaM := fromIdeaDomain(idea)

	if err := repo.db.WithContext(ctx).Save(ideaM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update idea")
	}

	return nil
}

// ListByOwner returns all ideas for a user, newest first.
func (repo *ideaRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.ContentIdea, error) {
	var ideaMs []*model.ContentIdeaModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("created_at DESC").
		Find(&ideaMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ideas by owner")
	}

	return toIdeaDomains(ideaMs), nil
}

// ListByOwnerAndStatus returns a user's ideas in one status, newest first.
func (repo *ideaRepository) ListByOwnerAndStatus(ctx context.Context, owner uuid.UUID, status entity.IdeaStatus) ([]*entity.ContentIdea, error) {
	var ideaMs []*model.ContentIdeaModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", owner, string(status)).
		Order("created_at DESC").
		Find(&ideaMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ideas by status")
	}

	return toIdeaDomains(ideaMs), nil
}

// ListRecentByOwner returns up to limit ideas ordered by most recent update.
func (repo *ideaRepository) ListRecentByOwner(ctx context.Context, owner uuid.UUID, limit int) ([]*entity.ContentIdea, error) {
	var ideaMs []*model.ContentIdeaModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("updated_at DESC").
		Limit(limit).
		Find(&ideaMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent ideas")
	}

	return toIdeaDomains(ideaMs), nil
}

// --- Mapper Functions ---

// toIdeaDomain converts a GORM ContentIdeaModel to a domain ContentIdea entity.
func toIdeaDomain(data *model.ContentIdeaModel) *entity.ContentIdea {
	if data == nil {
		return nil
	}

	return &entity.ContentIdea{
		ID:        data.ID,
		UserID:    data.UserID,
		OneLiner:  data.OneLiner,
		Status:    entity.IdeaStatus(data.Status),
		Content:   data.Content,
		Notes:     data.Notes,
		Tags:      []string(data.Tags),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toIdeaDomains(data []*model.ContentIdeaModel) []*entity.ContentIdea {
	ideas := make([]*entity.ContentIdea, 0, len(data))
	for _, ideaM := range data {
		ideas = append(ideas, toIdeaDomain(ideaM))
	}

	return ideas
}

// fromIdeaDomain converts a domain ContentIdea entity to a GORM model for persistence.
func fromIdeaDomain(data *entity.ContentIdea) *model.ContentIdeaModel {
	if data == nil {
		return nil
	}

	tags := data.Tags
	if tags == nil {
		// The column is NOT NULL; an absent tag set persists as empty.
		tags = []string{}
	}

	return &model.ContentIdeaModel{
		ID:        data.ID,
		UserID:    data.UserID,
		OneLiner:  data.OneLiner,
		Status:    string(data.Status),
		Content:   data.Content,
		Notes:     data.Notes,
		Tags:      pq.StringArray(tags),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
