package repository

import (
	"context"
	"errors"

	"chamabook/internal/domain/entity"
)

// ErrPlanNotFound is returned when a personal plan is not found.
var ErrPlanNotFound = errors.New("personal plan not found")

// PlanRepository defines the operations for personal plan persistence.
type PlanRepository interface {
	// FindByAdmin retrieves the plan owned by the given admin.
	FindByAdmin(ctx context.Context, adminID string) (*entity.PersonalPlan, error)

	// FindByID retrieves a single plan by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.PersonalPlan, error)

	// Create persists a new plan record.
	Create(ctx context.Context, plan *entity.PersonalPlan) error

	// Update replaces an existing plan record.
	Update(ctx context.Context, plan *entity.PersonalPlan) error
}
