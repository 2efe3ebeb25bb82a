package memory

import (
	"context"

	"chamabook/internal/domain/entity"
	"chamabook/internal/domain/repository"
)

// memberRepository implements repository.MemberRepository over the Store.
type memberRepository struct {
	store *Store
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(store *Store) repository.MemberRepository {
	return &memberRepository{store: store}
}

func (repo *memberRepository) List(ctx context.Context) ([]entity.Member, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return repo.store.members.list(), nil
}

func (repo *memberRepository) FindByID(ctx context.Context, id string) (*entity.Member, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	member, ok := repo.store.members.get(id)
	if !ok {
		return nil, repository.ErrMemberNotFound
	}

	return &member, nil
}

func (repo *memberRepository) FindByEmail(ctx context.Context, email string) (*entity.Member, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, member := range repo.store.members.list() {
		if member.Email == email {
			return &member, nil
		}
	}

	return nil, repository.ErrMemberNotFound
}

func (repo *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.members.put(member.ID, *member)

	return nil
}

func (repo *memberRepository) Update(ctx context.Context, member *entity.Member) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.members.get(member.ID); !ok {
		return repository.ErrMemberNotFound
	}
	repo.store.members.put(member.ID, *member)

	return nil
}

func (repo *memberRepository) Delete(ctx context.Context, id string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if !repo.store.members.remove(id) {
		return repository.ErrMemberNotFound
	}

	return nil
}
