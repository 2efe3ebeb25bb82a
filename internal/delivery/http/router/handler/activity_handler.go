package handler

import (
	"net/http"
	"strconv"

	"chamabook/internal/delivery/http/response"
	"chamabook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActivityHandler holds dependencies for the activity feed handler.
type ActivityHandler struct {
	uc usecase.ActivityUsecase
}

// NewActivityHandler is the constructor for ActivityHandler, injected by Fx.
func NewActivityHandler(uc usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List handles GET /api/activities?limit=N, newest first. A missing or
// malformed limit falls back to the configured default.
func (h *ActivityHandler) List(c echo.Context) error {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		limit = 0
	}

	activities, err := h.uc.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, activities)
}
