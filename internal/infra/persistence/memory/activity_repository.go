package memory

import (
	"context"

	"chamabook/internal/domain/entity"
	"chamabook/internal/domain/repository"
)

// activityRepository implements repository.ActivityRepository over the Store.
type activityRepository struct {
	store *Store
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(store *Store) repository.ActivityRepository {
	return &activityRepository{store: store}
}

func (repo *activityRepository) Append(ctx context.Context, activity *entity.Activity) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.activities = append(repo.store.activities, *activity)
	if overflow := len(repo.store.activities) - repo.store.activityCap; overflow > 0 {
		repo.store.activities = repo.store.activities[overflow:]
	}

	return nil
}

func (repo *activityRepository) ListRecent(ctx context.Context, limit int) ([]entity.Activity, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	if limit <= 0 || limit > len(repo.store.activities) {
		limit = len(repo.store.activities)
	}

	out := make([]entity.Activity, 0, limit)
	for i := len(repo.store.activities) - 1; i >= len(repo.store.activities)-limit; i-- {
		out = append(out, repo.store.activities[i])
	}

	return out, nil
}
