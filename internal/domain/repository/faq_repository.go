package repository

import (
	"context"
	"errors"

	"chamabook/internal/domain/entity"
)

// ErrFAQNotFound is returned when a FAQ is not found.
var ErrFAQNotFound = errors.New("faq not found")

// FAQRepository defines the operations for FAQ persistence.
type FAQRepository interface {
	// List retrieves all FAQs in insertion order.
	List(ctx context.Context) ([]entity.FAQ, error)

	// FindByID retrieves a single FAQ by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.FAQ, error)

	// Create persists a new FAQ record.
	Create(ctx context.Context, faq *entity.FAQ) error

	// Update replaces an existing FAQ record.
	Update(ctx context.Context, faq *entity.FAQ) error

	// Delete removes a FAQ record.
	Delete(ctx context.Context, id string) error
}
