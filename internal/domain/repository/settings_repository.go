package repository

import (
	"context"
	"errors"

	"kindling/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSettingsNotFound is returned when a user has no settings row yet.
var ErrSettingsNotFound = errors.New("content settings not found")

// SettingsRepository persists the one-per-user content settings row.
type SettingsRepository interface {
	// FindByOwner retrieves the settings row for a user.
	FindByOwner(ctx context.Context, owner uuid.UUID) (*entity.ContentSettings, error)

	// Create persists a new settings row.
	Create(ctx context.Context, settings *entity.ContentSettings) error

	// Update writes the full settings row.
	Update(ctx context.Context, settings *entity.ContentSettings) error
}
