package handler

import (
	"net/http"

	"chamabook/internal/delivery/http/response"
	"chamabook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createFAQRequest is the wire shape of a new FAQ.
type createFAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// updateFAQRequest enumerates the patchable FAQ fields.
type updateFAQRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

// FAQHandler holds dependencies for FAQ handlers.
type FAQHandler struct {
	uc usecase.FAQUsecase
}

// NewFAQHandler is the constructor for FAQHandler, injected by Fx.
func NewFAQHandler(uc usecase.FAQUsecase) *FAQHandler {
	return &FAQHandler{uc: uc}
}

// List handles GET /api/faqs.
func (h *FAQHandler) List(c echo.Context) error {
	faqs, err := h.uc.ListFAQs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, faqs)
}

// Create handles POST /api/faqs.
func (h *FAQHandler) Create(c echo.Context) error {
	var req createFAQRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	faq, err := h.uc.CreateFAQ(c.Request().Context(), usecase.CreateFAQInput{
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, faq)
}

// Update handles PATCH /api/faqs/:id.
func (h *FAQHandler) Update(c echo.Context) error {
	var req updateFAQRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	faq, err := h.uc.UpdateFAQ(c.Request().Context(), c.Param("id"), usecase.UpdateFAQInput{
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, faq)
}

// Delete handles DELETE /api/faqs/:id.
func (h *FAQHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteFAQ(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Deleted(c)
}
