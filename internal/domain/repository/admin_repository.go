package repository

import (
	"context"
	"errors"

	"chamabook/internal/domain/entity"
)

// ErrAdminNotFound is returned when an admin is not found.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines the operations for admin persistence.
type AdminRepository interface {
	// List retrieves all admins in insertion order.
	List(ctx context.Context) ([]entity.Admin, error)

	// FindByID retrieves a single admin by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.Admin, error)

	// FindByEmail retrieves a single admin by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// Create persists a new admin record.
	Create(ctx context.Context, admin *entity.Admin) error

	// Update replaces an existing admin record.
	Update(ctx context.Context, admin *entity.Admin) error

	// Delete removes an admin record.
	Delete(ctx context.Context, id string) error
}
