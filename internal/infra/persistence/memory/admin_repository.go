package memory

import (
	"context"

	"chamabook/internal/domain/entity"
	"chamabook/internal/domain/repository"
)

// adminRepository implements repository.AdminRepository over the Store.
type adminRepository struct {
	store *Store
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(store *Store) repository.AdminRepository {
	return &adminRepository{store: store}
}

func (repo *adminRepository) List(ctx context.Context) ([]entity.Admin, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return repo.store.admins.list(), nil
}

func (repo *adminRepository) FindByID(ctx context.Context, id string) (*entity.Admin, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	admin, ok := repo.store.admins.get(id)
	if !ok {
		return nil, repository.ErrAdminNotFound
	}

	return &admin, nil
}

func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, admin := range repo.store.admins.list() {
		if admin.Email == email {
			return &admin, nil
		}
	}

	return nil, repository.ErrAdminNotFound
}

func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.admins.put(admin.ID, *admin)

	return nil
}

func (repo *adminRepository) Update(ctx context.Context, admin *entity.Admin) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.admins.get(admin.ID); !ok {
		return repository.ErrAdminNotFound
	}
	repo.store.admins.put(admin.ID, *admin)

	return nil
}

func (repo *adminRepository) Delete(ctx context.Context, id string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if !repo.store.admins.remove(id) {
		return repository.ErrAdminNotFound
	}

	return nil
}
