package usecase

import (
	"context"

	"chamabook/internal/domain/entity"
)

// CreateTransactionInput carries the fields of a new ledger transaction.
type CreateTransactionInput struct {
	MemberID  string
	Type      entity.TransactionType
	Amount    float64
	Date      string
	Note      string
	CreatedBy string
}

// CreateLoanInput carries the fields of a new loan. Outstanding, status, and
// creation time are computed by the mutator.
type CreateLoanInput struct {
	MemberID     string
	Principal    float64
	InterestRate float64
}

// UpdateLoanInput enumerates the loan fields a patch may change. Nil
// pointers leave the field untouched. Patching Outstanding drives the
// repayment bookkeeping on the owning member.
type UpdateLoanInput struct {
	MemberID     *string
	Principal    *float64
	InterestRate *float64
	Outstanding  *float64
	Status       *entity.LoanStatus
}

// LedgerUsecase defines the transaction and loan mutators together with
// their read accessors. These are the operations that keep member balances,
// loan outstanding amounts, and the activity trail consistent.
type LedgerUsecase interface {
	// ListTransactions retrieves all transactions, or only those of the
	// given member when memberID is non-empty.
	ListTransactions(ctx context.Context, memberID string) ([]entity.Transaction, error)

	// CreateTransaction appends an immutable transaction. Deposits raise and
	// withdrawals lower the referenced member's TotalSaved; an unknown
	// memberID is accepted and stored with the aggregate update skipped.
	// Always appends an activity describing the action.
	CreateTransaction(ctx context.Context, input CreateTransactionInput) (*entity.Transaction, error)

	// ListLoans retrieves all loans, or only those of the given member when
	// memberID is non-empty.
	ListLoans(ctx context.Context, memberID string) ([]entity.Loan, error)

	// GetLoan retrieves a single loan by ID.
	GetLoan(ctx context.Context, id string) (*entity.Loan, error)

	// CreateLoan approves a loan: outstanding = principal plus simple
	// interest, a loan_disbursement transaction is emitted, the member's
	// outstanding grows by the loan's outstanding, and a loan_approved
	// activity is appended.
	CreateLoan(ctx context.Context, input CreateLoanInput) (*entity.Loan, error)

	// UpdateLoan applies a partial update. When Outstanding is patched the
	// delta is mirrored onto the member, a drop appends a loan_repayment
	// activity, and reaching exactly zero flips the status to paid.
	UpdateLoan(ctx context.Context, id string, input UpdateLoanInput) (*entity.Loan, error)
}
