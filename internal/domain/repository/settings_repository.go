package repository

import (
	"context"
	"errors"

	"chamabook/internal/domain/entity"
)

// ErrSettingsNotFound is returned when no settings record is active, or an
// update names an ID other than the active record's.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository defines the operations for the settings singleton.
type SettingsRepository interface {
	// Get retrieves the active settings record.
	Get(ctx context.Context) (*entity.Settings, error)

	// Create replaces the active settings record with a new one.
	Create(ctx context.Context, settings *entity.Settings) error

	// Update replaces the active settings record; the ID must match.
	Update(ctx context.Context, settings *entity.Settings) error
}
