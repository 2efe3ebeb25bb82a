package memory

import (
	"context"

	"chamabook/internal/domain/entity"
	"chamabook/internal/domain/repository"
)

// faqRepository implements repository.FAQRepository over the Store.
type faqRepository struct {
	store *Store
}

// NewFAQRepository is the constructor for faqRepository.
func NewFAQRepository(store *Store) repository.FAQRepository {
	return &faqRepository{store: store}
}

func (repo *faqRepository) List(ctx context.Context) ([]entity.FAQ, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return repo.store.faqs.list(), nil
}

func (repo *faqRepository) FindByID(ctx context.Context, id string) (*entity.FAQ, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	faq, ok := repo.store.faqs.get(id)
	if !ok {
		return nil, repository.ErrFAQNotFound
	}

	return &faq, nil
}

func (repo *faqRepository) Create(ctx context.Context, faq *entity.FAQ) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.faqs.put(faq.ID, *faq)

	return nil
}

func (repo *faqRepository) Update(ctx context.Context, faq *entity.FAQ) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.faqs.get(faq.ID); !ok {
		return repository.ErrFAQNotFound
	}
	repo.store.faqs.put(faq.ID, *faq)

	return nil
}

func (repo *faqRepository) Delete(ctx context.Context, id string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if !repo.store.faqs.remove(id) {
		return repository.ErrFAQNotFound
	}

	return nil
}
