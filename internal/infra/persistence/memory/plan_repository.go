package memory

import (
	"context"

	"chamabook/internal/domain/entity"
	"chamabook/internal/domain/repository"
)

// planRepository implements repository.PlanRepository over the Store.
type planRepository struct {
	store *Store
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository(store *Store) repository.PlanRepository {
	return &planRepository{store: store}
}

// clonePlan copies a plan including its categories slice, so callers never
// share backing arrays with the store.
func clonePlan(plan entity.PersonalPlan) entity.PersonalPlan {
	if plan.Categories != nil {
		categories := make([]entity.SpendingCategory, len(plan.Categories))
		copy(categories, plan.Categories)
		plan.Categories = categories
	}

	return plan
}

func (repo *planRepository) FindByAdmin(ctx context.Context, adminID string) (*entity.PersonalPlan, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, plan := range repo.store.plans.list() {
		if plan.AdminID == adminID {
			cloned := clonePlan(plan)

			return &cloned, nil
		}
	}

	return nil, repository.ErrPlanNotFound
}

func (repo *planRepository) FindByID(ctx context.Context, id string) (*entity.PersonalPlan, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	plan, ok := repo.store.plans.get(id)
	if !ok {
		return nil, repository.ErrPlanNotFound
	}
	cloned := clonePlan(plan)

	return &cloned, nil
}

func (repo *planRepository) Create(ctx context.Context, plan *entity.PersonalPlan) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.plans.put(plan.ID, clonePlan(*plan))

	return nil
}

func (repo *planRepository) Update(ctx context.Context, plan *entity.PersonalPlan) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.plans.get(plan.ID); !ok {
		return repository.ErrPlanNotFound
	}
	repo.store.plans.put(plan.ID, clonePlan(*plan))

	return nil
}
