package impl

import (
	"context"

	"chamabook/internal/domain/entity"
	domainerrors "chamabook/internal/domain/errors"
	"chamabook/internal/domain/repository"
	"chamabook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type adminService struct {
	adminRepo repository.AdminRepository
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	AdminRepo repository.AdminRepository
}

// NewAdminService creates the admin account service.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{adminRepo: params.AdminRepo}
}

// ListAdmins retrieves all admins.
func (s *adminService) ListAdmins(ctx context.Context) ([]entity.Admin, error) {
	admins, err := s.adminRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admins")
	}

	return admins, nil
}

// CreateAdmin registers a new admin after checking email uniqueness.
func (s *adminService) CreateAdmin(ctx context.Context, input usecase.CreateAdminInput) (*entity.Admin, error) {
	if _, err := s.adminRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrEmailExists
	} else if !errors.Is(err, repository.ErrAdminNotFound) {
		return nil, errors.Wrap(err, "failed to check admin email")
	}

	admin := &entity.Admin{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		AvatarURL: input.AvatarURL,
		Password:  input.Password,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, errors.Wrap(err, "failed to create admin")
	}

	return admin, nil
}

// UpdateAdmin applies a partial update to an admin.
func (s *adminService) UpdateAdmin(ctx context.Context, id string, input usecase.UpdateAdminInput) (*entity.Admin, error) {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin")
	}

	if input.Name != nil {
		admin.Name = *input.Name
	}
	if input.Email != nil {
		admin.Email = *input.Email
	}
	if input.Phone != nil {
		admin.Phone = *input.Phone
	}
	if input.AvatarURL != nil {
		admin.AvatarURL = input.AvatarURL
	}
	if input.Password != nil {
		admin.Password = *input.Password
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, errors.Wrap(err, "failed to update admin")
	}

	return admin, nil
}

// DeleteAdmin removes an admin account.
func (s *adminService) DeleteAdmin(ctx context.Context, id string) error {
	if err := s.adminRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domainerrors.ErrAdminNotFound
		}

		return errors.Wrap(err, "failed to delete admin")
	}

	return nil
}
