package repository

import (
	"context"
	"errors"

	"chamabook/internal/domain/entity"
)

// ErrLoanNotFound is returned when a loan is not found.
var ErrLoanNotFound = errors.New("loan not found")

// LoanRepository defines the operations for loan persistence.
type LoanRepository interface {
	// List retrieves all loans in insertion order.
	List(ctx context.Context) ([]entity.Loan, error)

	// ListByMember retrieves all loans for the given member.
	ListByMember(ctx context.Context, memberID string) ([]entity.Loan, error)

	// FindByID retrieves a single loan by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Loan, error)

	// Create persists a new loan record.
	Create(ctx context.Context, loan *entity.Loan) error

	// Update replaces an existing loan record.
	Update(ctx context.Context, loan *entity.Loan) error
}
