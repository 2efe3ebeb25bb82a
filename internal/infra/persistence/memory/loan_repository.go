package memory

import (
	"context"

	"chamabook/internal/domain/entity"
	"chamabook/internal/domain/repository"
)

// loanRepository implements repository.LoanRepository over the Store.
type loanRepository struct {
	store *Store
}

// NewLoanRepository is the constructor for loanRepository.
func NewLoanRepository(store *Store) repository.LoanRepository {
	return &loanRepository{store: store}
}

func (repo *loanRepository) List(ctx context.Context) ([]entity.Loan, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return repo.store.loans.list(), nil
}

func (repo *loanRepository) ListByMember(ctx context.Context, memberID string) ([]entity.Loan, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	var out []entity.Loan
	for _, loan := range repo.store.loans.list() {
		if loan.MemberID == memberID {
			out = append(out, loan)
		}
	}

	return out, nil
}

func (repo *loanRepository) FindByID(ctx context.Context, id string) (*entity.Loan, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	loan, ok := repo.store.loans.get(id)
	if !ok {
		return nil, repository.ErrLoanNotFound
	}

	return &loan, nil
}

func (repo *loanRepository) Create(ctx context.Context, loan *entity.Loan) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.loans.put(loan.ID, *loan)

	return nil
}

func (repo *loanRepository) Update(ctx context.Context, loan *entity.Loan) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.loans.get(loan.ID); !ok {
		return repository.ErrLoanNotFound
	}
	repo.store.loans.put(loan.ID, *loan)

	return nil
}
