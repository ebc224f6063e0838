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

// connectedAccountRepository implements the domain's ConnectedAccountRepository interface using GORM.
type connectedAccountRepository struct {
	db *gorm.DB
}

// NewConnectedAccountRepository is the constructor for connectedAccountRepository.
func NewConnectedAccountRepository(db *gorm.DB) repository.ConnectedAccountRepository {
	return &connectedAccountRepository{db: db}
}

// FindByOwnerAndProvider retrieves one user's account for a provider.
func (repo *connectedAccountRepository) FindByOwnerAndProvider(ctx context.Context, owner uuid.UUID, provider entity.Provider) (*entity.ConnectedAccount, error) {
	var accountM model.ConnectedAccountModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", owner, string(provider)).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find connected account")
	}

	return toAccountDomain(&accountM), nil
}

// ListByOwner returns all connected accounts for a user.
func (repo *connectedAccountRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.ConnectedAccount, error) {
	var accountMs []*model.ConnectedAccountModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("created_at ASC").
		Find(&accountMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list connected accounts")
	}

	accounts := make([]*entity.ConnectedAccount, 0, len(accountMs))
	for _, accountM := range accountMs {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// Create persists a new connected account.
func (repo *connectedAccountRepository) Create(ctx context.Context, account *entity.ConnectedAccount) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// At most one account per (user, provider).
			return repository.ErrDuplicateID
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create connected account")
	}

	return nil
}

// Update writes the full account row, used when reconnecting.
func (repo *connectedAccountRepository) Update(ctx context.Context, account *entity.ConnectedAccount) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Save(accountM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update connected account")
	}

	return nil
}

// DeleteByOwnerAndProvider removes a user's account for a provider.
func (repo *connectedAccountRepository) DeleteByOwnerAndProvider(ctx context.Context, owner uuid.UUID, provider entity.Provider) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", owner, string(provider)).
		Delete(&model.ConnectedAccountModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete connected account")
	}

	return nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.ConnectedAccountModel) *entity.ConnectedAccount {
	if data == nil {
		return nil
	}

	return &entity.ConnectedAccount{
		ID:                data.ID,
		UserID:            data.UserID,
		Provider:          entity.Provider(data.Provider),
		ProviderAccountID: data.ProviderAccountID,
		Username:          data.Username,
		AccessToken:       data.AccessToken,
		RefreshToken:      data.RefreshToken,
		ExpiresAt:         data.ExpiresAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.ConnectedAccount) *model.ConnectedAccountModel {
	if data == nil {
		return nil
	}

	return &model.ConnectedAccountModel{
		ID:                data.ID,
		UserID:            data.UserID,
		Provider:          string(data.Provider),
		ProviderAccountID: data.ProviderAccountID,
		Username:          data.Username,
		AccessToken:       data.AccessToken,
		RefreshToken:      data.RefreshToken,
		ExpiresAt:         data.ExpiresAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
