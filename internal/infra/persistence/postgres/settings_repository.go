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

// settingsRepository implements the domain's SettingsRepository interface using GORM.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// FindByOwner retrieves the settings row for a user.
func (repo *settingsRepository) FindByOwner(ctx context.Context, owner uuid.UUID) (*entity.ContentSettings, error) {
	var settingsM model.ContentSettingsModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", owner).First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find settings by owner")
	}

	return toSettingsDomain(&settingsM), nil
}

// Create persists a new settings row.
func (repo *settingsRepository) Create(ctx context.Context, settings *entity.ContentSettings) error {
	settingsM := fromSettingsDomain(settings)

	if err := repo.db.WithContext(ctx).Create(settingsM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// One row per user; a concurrent upsert already created it.
			return repository.ErrDuplicateID
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create settings")
	}

	return nil
}

// Update writes the full settings row.
func (repo *settingsRepository) Update(ctx context.Context, settings *entity.ContentSettings) error {
	settingsM := fromSettingsDomain(settings)

	if err := repo.db.WithContext(ctx).Save(settingsM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update settings")
	}

	return nil
}

// --- Mapper Functions ---

func toSettingsDomain(data *model.ContentSettingsModel) *entity.ContentSettings {
	if data == nil {
		return nil
	}

	return &entity.ContentSettings{
		ID:                data.ID,
		UserID:            data.UserID,
		TargetAudience:    data.TargetAudience,
		BrandVoice:        data.BrandVoice,
		ContentPillars:    data.ContentPillars,
		UniquePerspective: data.UniquePerspective,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromSettingsDomain(data *entity.ContentSettings) *model.ContentSettingsModel {
	if data == nil {
		return nil
	}

	return &model.ContentSettingsModel{
		ID:                data.ID,
		UserID:            data.UserID,
		TargetAudience:    data.TargetAudience,
		BrandVoice:        data.BrandVoice,
		ContentPillars:    data.ContentPillars,
		UniquePerspective: data.UniquePerspective,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
