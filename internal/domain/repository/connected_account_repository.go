package repository

import (
	"context"
	"errors"

	"kindling/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no connected account exists for the
// given (user, provider) pair.
var ErrAccountNotFound = errors.New("connected account not found")

// ConnectedAccountRepository persists external platform credentials.
type ConnectedAccountRepository interface {
	// FindByOwnerAndProvider retrieves one user's account for a provider.
	FindByOwnerAndProvider(ctx context.Context, owner uuid.UUID, provider entity.Provider) (*entity.ConnectedAccount, error)

	// ListByOwner returns all connected accounts for a user.
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.ConnectedAccount, error)

	// Create persists a new connected account.
	Create(ctx context.Context, account *entity.ConnectedAccount) error

	// Update writes the full account row, used when reconnecting.
	Update(ctx context.Context, account *entity.ConnectedAccount) error

	// DeleteByOwnerAndProvider removes a user's account for a provider.
	DeleteByOwnerAndProvider(ctx context.Context, owner uuid.UUID, provider entity.Provider) error
}
