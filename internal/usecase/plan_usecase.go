package usecase

import (
	"context"

	"chamabook/internal/domain/entity"
)

// CreatePlanInput carries the fields of a new personal plan.
type CreatePlanInput struct {
	AdminID         string
	WeeklyIncome    float64
	Categories      []entity.SpendingCategory
	PersonalSavings float64
}

// UpdatePlanInput enumerates the plan fields a patch may change.
type UpdatePlanInput struct {
	WeeklyIncome    *float64
	Categories      []entity.SpendingCategory
	PersonalSavings *float64
}

// PlanUsecase defines the personal budgeting plan use cases.
type PlanUsecase interface {
	// GetPlanByAdmin retrieves the plan owned by the given admin, or nil
	// when the admin has none yet.
	GetPlanByAdmin(ctx context.Context, adminID string) (*entity.PersonalPlan, error)

	// CreatePlan stores a new plan.
	CreatePlan(ctx context.Context, input CreatePlanInput) (*entity.PersonalPlan, error)

	// UpdatePlan applies a partial update to a plan.
	UpdatePlan(ctx context.Context, id string, input UpdatePlanInput) (*entity.PersonalPlan, error)
}
