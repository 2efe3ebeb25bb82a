package memory

import (
	"context"

	"chamabook/internal/domain/entity"
	"chamabook/internal/domain/repository"
)

// settingsRepository implements repository.SettingsRepository over the Store.
// The store keeps a single active settings record.
type settingsRepository struct {
	store *Store
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(store *Store) repository.SettingsRepository {
	return &settingsRepository{store: store}
}

func (repo *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	if repo.store.settings == nil {
		return nil, repository.ErrSettingsNotFound
	}
	settings := *repo.store.settings

	return &settings, nil
}

func (repo *settingsRepository) Create(ctx context.Context, settings *entity.Settings) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	record := *settings
	repo.store.settings = &record

	return nil
}

func (repo *settingsRepository) Update(ctx context.Context, settings *entity.Settings) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if repo.store.settings == nil || repo.store.settings.ID != settings.ID {
		return repository.ErrSettingsNotFound
	}
	record := *settings
	repo.store.settings = &record

	return nil
}
