package usecase

import (
	"context"

	"chamabook/internal/domain/entity"
)

// CreateAdminInput carries the fields of a new admin account.
type CreateAdminInput struct {
	Name      string
	Email     string
	Phone     string
	AvatarURL *string
	Password  string
}

// UpdateAdminInput enumerates the admin fields a patch may change.
type UpdateAdminInput struct {
	Name      *string
	Email     *string
	Phone     *string
	AvatarURL *string
	Password  *string
}

// AdminUsecase defines the admin account use cases. Passwords never leave
// this layer: the Admin entity excludes them from serialization.
type AdminUsecase interface {
	// ListAdmins retrieves all admins.
	ListAdmins(ctx context.Context) ([]entity.Admin, error)

	// CreateAdmin registers a new admin. Fails when the email is taken.
	CreateAdmin(ctx context.Context, input CreateAdminInput) (*entity.Admin, error)

	// UpdateAdmin applies a partial update to an admin.
	UpdateAdmin(ctx context.Context, id string, input UpdateAdminInput) (*entity.Admin, error)

	// DeleteAdmin removes an admin account.
	DeleteAdmin(ctx context.Context, id string) error
}
