package memory

import (
	"context"

	"chamabook/internal/domain/entity"
	"chamabook/internal/domain/repository"
)

// transactionRepository implements repository.TransactionRepository over the Store.
type transactionRepository struct {
	store *Store
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(store *Store) repository.TransactionRepository {
	return &transactionRepository{store: store}
}

func (repo *transactionRepository) List(ctx context.Context) ([]entity.Transaction, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return repo.store.transactions.list(), nil
}

func (repo *transactionRepository) ListByMember(ctx context.Context, memberID string) ([]entity.Transaction, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	var out []entity.Transaction
	for _, transaction := range repo.store.transactions.list() {
		if transaction.MemberID == memberID {
			out = append(out, transaction)
		}
	}

	return out, nil
}

func (repo *transactionRepository) FindByID(ctx context.Context, id string) (*entity.Transaction, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	transaction, ok := repo.store.transactions.get(id)
	if !ok {
		return nil, repository.ErrTransactionNotFound
	}

	return &transaction, nil
}

func (repo *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.transactions.put(transaction.ID, *transaction)

	return nil
}
