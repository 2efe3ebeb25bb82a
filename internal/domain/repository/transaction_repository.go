package repository

import (
	"context"
	"errors"

	"chamabook/internal/domain/entity"
)

// ErrTransactionNotFound is returned when a transaction is not found.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository defines the operations for transaction persistence.
// Transactions are immutable once created, so there is no update or delete.
type TransactionRepository interface {
	// List retrieves all transactions in insertion order.
	List(ctx context.Context) ([]entity.Transaction, error)

	// ListByMember retrieves all transactions for the given member.
	ListByMember(ctx context.Context, memberID string) ([]entity.Transaction, error)

	// FindByID retrieves a single transaction by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Transaction, error)

	// Create persists a new transaction record.
	Create(ctx context.Context, transaction *entity.Transaction) error
}
