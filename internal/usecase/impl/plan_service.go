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

type planService struct {
	planRepo repository.PlanRepository
}

// PlanServiceParams holds dependencies for PlanService, injected by Fx.
type PlanServiceParams struct {
	fx.In

	PlanRepo repository.PlanRepository
}

// NewPlanService creates the personal plan service.
func NewPlanService(params PlanServiceParams) usecase.PlanUsecase {
	return &planService{planRepo: params.PlanRepo}
}

// GetPlanByAdmin retrieves the admin's plan, or nil when none exists yet.
func (s *planService) GetPlanByAdmin(ctx context.Context, adminID string) (*entity.PersonalPlan, error) {
	plan, err := s.planRepo.FindByAdmin(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find plan by admin")
	}

	return plan, nil
}

// CreatePlan stores a new plan.
func (s *planService) CreatePlan(ctx context.Context, input usecase.CreatePlanInput) (*entity.PersonalPlan, error) {
	plan := &entity.PersonalPlan{
		ID:              uuid.New().String(),
		AdminID:         input.AdminID,
		WeeklyIncome:    input.WeeklyIncome,
		Categories:      input.Categories,
		PersonalSavings: input.PersonalSavings,
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, errors.Wrap(err, "failed to create plan")
	}

	return plan, nil
}

// UpdatePlan applies a partial update to a plan.
func (s *planService) UpdatePlan(ctx context.Context, id string, input usecase.UpdatePlanInput) (*entity.PersonalPlan, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan")
	}

	if input.WeeklyIncome != nil {
		plan.WeeklyIncome = *input.WeeklyIncome
	}
	if input.Categories != nil {
		plan.Categories = input.Categories
	}
	if input.PersonalSavings != nil {
		plan.PersonalSavings = *input.PersonalSavings
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, errors.Wrap(err, "failed to update plan")
	}

	return plan, nil
}
