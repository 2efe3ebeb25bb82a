package impl

import (
	"context"

	"chamabook/internal/domain/entity"
	domainerrors "chamabook/internal/domain/errors"
	"chamabook/internal/domain/repository"
	"chamabook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	SettingsRepo repository.SettingsRepository
}

// NewSettingsService creates the settings service.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{settingsRepo: params.SettingsRepo}
}

// GetSettings retrieves the active settings record, or nil when none exists.
func (s *settingsService) GetSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to get settings")
	}

	return settings, nil
}

// CreateSettings replaces the active settings record.
func (s *settingsService) CreateSettings(ctx context.Context, input usecase.CreateSettingsInput) (*entity.Settings, error) {
	settings := &entity.Settings{
		ID:                                 uuid.New().String(),
		TargetAmount:                       input.TargetAmount,
		TargetPeriodMonths:                 input.TargetPeriodMonths,
		DailyMinimum:                       input.DailyMinimum,
		GlobalInterestRate:                 input.GlobalInterestRate,
		RequirePasswordForSensitiveActions: input.RequirePasswordForSensitiveActions,
	}
	if err := s.settingsRepo.Create(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to create settings")
	}

	return settings, nil
}

// UpdateSettings patches the active settings record; the ID must match.
func (s *settingsService) UpdateSettings(ctx context.Context, id string, input usecase.UpdateSettingsInput) (*entity.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil || settings.ID != id {
		if err == nil || errors.Is(err, repository.ErrSettingsNotFound) {
			return nil, domainerrors.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to get settings")
	}

	if input.TargetAmount != nil {
		settings.TargetAmount = *input.TargetAmount
	}
	if input.TargetPeriodMonths != nil {
		settings.TargetPeriodMonths = *input.TargetPeriodMonths
	}
	if input.DailyMinimum != nil {
		settings.DailyMinimum = *input.DailyMinimum
	}
	if input.GlobalInterestRate != nil {
		settings.GlobalInterestRate = *input.GlobalInterestRate
	}
	if input.RequirePasswordForSensitiveActions != nil {
		settings.RequirePasswordForSensitiveActions = *input.RequirePasswordForSensitiveActions
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to update settings")
	}

	return settings, nil
}
