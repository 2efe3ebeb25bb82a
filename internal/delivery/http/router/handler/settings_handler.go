package handler

import (
	"net/http"

	"chamabook/internal/delivery/http/response"
	"chamabook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createSettingsRequest is the wire shape of a settings record.
type createSettingsRequest struct {
	TargetAmount                       float64 `json:"targetAmount" validate:"required,gt=0"`
	TargetPeriodMonths                 int     `json:"targetPeriodMonths" validate:"required,gt=0"`
	DailyMinimum                       float64 `json:"dailyMinimum" validate:"gte=0"`
	GlobalInterestRate                 float64 `json:"globalInterestRate" validate:"gte=0"`
	RequirePasswordForSensitiveActions bool    `json:"requirePasswordForSensitiveActions"`
}

// updateSettingsRequest enumerates the patchable settings fields.
type updateSettingsRequest struct {
	TargetAmount                       *float64 `json:"targetAmount"`
	TargetPeriodMonths                 *int     `json:"targetPeriodMonths"`
	DailyMinimum                       *float64 `json:"dailyMinimum"`
	GlobalInterestRate                 *float64 `json:"globalInterestRate"`
	RequirePasswordForSensitiveActions *bool    `json:"requirePasswordForSensitiveActions"`
}

// SettingsHandler holds dependencies for settings handlers.
type SettingsHandler struct {
	uc usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler, injected by Fx.
func NewSettingsHandler(uc usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get handles GET /api/settings. Returns null when no record exists.
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.uc.GetSettings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, settings)
}

// Create handles POST /api/settings, replacing the active record.
func (h *SettingsHandler) Create(c echo.Context) error {
	var req createSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	settings, err := h.uc.CreateSettings(c.Request().Context(), usecase.CreateSettingsInput{
		TargetAmount:                       req.TargetAmount,
		TargetPeriodMonths:                 req.TargetPeriodMonths,
		DailyMinimum:                       req.DailyMinimum,
		GlobalInterestRate:                 req.GlobalInterestRate,
		RequirePasswordForSensitiveActions: req.RequirePasswordForSensitiveActions,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, settings)
}

// Update handles PATCH /api/settings/:id.
func (h *SettingsHandler) Update(c echo.Context) error {
	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	settings, err := h.uc.UpdateSettings(c.Request().Context(), c.Param("id"), usecase.UpdateSettingsInput{
		TargetAmount:                       req.TargetAmount,
		TargetPeriodMonths:                 req.TargetPeriodMonths,
		DailyMinimum:                       req.DailyMinimum,
		GlobalInterestRate:                 req.GlobalInterestRate,
		RequirePasswordForSensitiveActions: req.RequirePasswordForSensitiveActions,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, settings)
}
