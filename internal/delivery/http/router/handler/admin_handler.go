package handler

import (
	"net/http"

	"chamabook/internal/delivery/http/response"
	"chamabook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createAdminRequest is the wire shape of a new admin account. The password
// is accepted on input only and never serialized back.
type createAdminRequest struct {
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     string  `json:"phone"`
	AvatarURL *string `json:"avatarUrl"`
	Password  string  `json:"password" validate:"required"`
}

// updateAdminRequest enumerates the patchable admin fields.
type updateAdminRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatarUrl"`
	Password  *string `json:"password"`
}

// AdminHandler holds dependencies for admin account handlers.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// List handles GET /api/admins.
func (h *AdminHandler) List(c echo.Context) error {
	admins, err := h.uc.ListAdmins(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, admins)
}

// Create handles POST /api/admins.
func (h *AdminHandler) Create(c echo.Context) error {
	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	admin, err := h.uc.CreateAdmin(c.Request().Context(), usecase.CreateAdminInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		AvatarURL: req.AvatarURL,
		Password:  req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, admin)
}

// Update handles PATCH /api/admins/:id.
func (h *AdminHandler) Update(c echo.Context) error {
	var req updateAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	admin, err := h.uc.UpdateAdmin(c.Request().Context(), c.Param("id"), usecase.UpdateAdminInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		AvatarURL: req.AvatarURL,
		Password:  req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, admin)
}

// Delete handles DELETE /api/admins/:id.
func (h *AdminHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteAdmin(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Deleted(c)
}
