// Package handler contains the HTTP handlers for the bookkeeping API.
package handler

import (
	"net/http"

	"chamabook/internal/delivery/http/response"
	"chamabook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createMemberRequest is the wire shape of a member registration.
type createMemberRequest struct {
	Name      string  `json:"name" validate:"required"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email" validate:"required,email"`
	AvatarURL *string `json:"avatarUrl"`
	JoinedAt  string  `json:"joinedAt"`
	Reason    string  `json:"reason"`
}

// updateMemberRequest enumerates the patchable member fields. Absent fields
// stay untouched; savings aggregates are never patchable.
type updateMemberRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	AvatarURL *string `json:"avatarUrl"`
	Reason    *string `json:"reason"`
}

// MemberHandler holds dependencies for member-related handlers.
type MemberHandler struct {
	uc usecase.MemberUsecase
}

// NewMemberHandler is the constructor for MemberHandler, injected by Fx.
func NewMemberHandler(uc usecase.MemberUsecase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

// List handles GET /api/members.
func (h *MemberHandler) List(c echo.Context) error {
	members, err := h.uc.ListMembers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, members)
}

// Get handles GET /api/members/:id.
func (h *MemberHandler) Get(c echo.Context) error {
	member, err := h.uc.GetMember(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, member)
}

// Create handles POST /api/members.
func (h *MemberHandler) Create(c echo.Context) error {
	var req createMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	member, err := h.uc.CreateMember(c.Request().Context(), usecase.CreateMemberInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
		JoinedAt:  req.JoinedAt,
		Reason:    req.Reason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, member)
}

// Update handles PATCH /api/members/:id.
func (h *MemberHandler) Update(c echo.Context) error {
	var req updateMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	member, err := h.uc.UpdateMember(c.Request().Context(), c.Param("id"), usecase.UpdateMemberInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
		Reason:    req.Reason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, member)
}

// Delete handles DELETE /api/members/:id.
func (h *MemberHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteMember(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Deleted(c)
}
