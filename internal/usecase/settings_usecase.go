package usecase

import (
	"context"

	"chamabook/internal/domain/entity"
)

// CreateSettingsInput carries the fields of a new settings record.
type CreateSettingsInput struct {
	TargetAmount                       float64
	TargetPeriodMonths                 int
	DailyMinimum                       float64
	GlobalInterestRate                 float64
	RequirePasswordForSensitiveActions bool
}

// UpdateSettingsInput enumerates the settings fields a patch may change.
type UpdateSettingsInput struct {
	TargetAmount                       *float64
	TargetPeriodMonths                 *int
	DailyMinimum                       *float64
	GlobalInterestRate                 *float64
	RequirePasswordForSensitiveActions *bool
}

// SettingsUsecase defines the use cases for the settings singleton.
type SettingsUsecase interface {
	// GetSettings retrieves the active settings record, or nil when none
	// exists.
	GetSettings(ctx context.Context) (*entity.Settings, error)

	// CreateSettings replaces the active settings record.
	CreateSettings(ctx context.Context, input CreateSettingsInput) (*entity.Settings, error)

	// UpdateSettings patches the active settings record; the ID must match.
	UpdateSettings(ctx context.Context, id string, input UpdateSettingsInput) (*entity.Settings, error)
}
