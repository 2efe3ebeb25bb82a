package handler

import (
	"net/http"

	"chamabook/internal/delivery/http/response"
	"chamabook/internal/domain/entity"
	"chamabook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// spendingCategoryRequest mirrors entity.SpendingCategory on the wire.
type spendingCategoryRequest struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PlannedAmount float64 `json:"plannedAmount"`
	ActualAmount  float64 `json:"actualAmount"`
}

// createPlanRequest is the wire shape of a new personal plan.
type createPlanRequest struct {
	AdminID         string                    `json:"adminId" validate:"required"`
	WeeklyIncome    float64                   `json:"weeklyIncome"`
	Categories      []spendingCategoryRequest `json:"categories"`
	PersonalSavings float64                   `json:"personalSavings"`
}

// updatePlanRequest enumerates the patchable plan fields.
type updatePlanRequest struct {
	WeeklyIncome    *float64                  `json:"weeklyIncome"`
	Categories      []spendingCategoryRequest `json:"categories"`
	PersonalSavings *float64                  `json:"personalSavings"`
}

// PlanHandler holds dependencies for personal plan handlers.
type PlanHandler struct {
	uc usecase.PlanUsecase
}

// NewPlanHandler is the constructor for PlanHandler, injected by Fx.
func NewPlanHandler(uc usecase.PlanUsecase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// Get handles GET /api/personal-plan?adminId=. Returns null when the admin
// has no plan yet.
func (h *PlanHandler) Get(c echo.Context) error {
	adminID := c.QueryParam("adminId")
	if adminID == "" {
		return response.BadRequest(c, "adminId is required")
	}

	plan, err := h.uc.GetPlanByAdmin(c.Request().Context(), adminID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, plan)
}

// Create handles POST /api/personal-plan.
func (h *PlanHandler) Create(c echo.Context) error {
	var req createPlanRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	plan, err := h.uc.CreatePlan(c.Request().Context(), usecase.CreatePlanInput{
		AdminID:         req.AdminID,
		WeeklyIncome:    req.WeeklyIncome,
		Categories:      toCategories(req.Categories),
		PersonalSavings: req.PersonalSavings,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, plan)
}

// Update handles PATCH /api/personal-plan/:id.
func (h *PlanHandler) Update(c echo.Context) error {
	var req updatePlanRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := usecase.UpdatePlanInput{
		WeeklyIncome:    req.WeeklyIncome,
		PersonalSavings: req.PersonalSavings,
	}
	if req.Categories != nil {
		input.Categories = toCategories(req.Categories)
	}

	plan, err := h.uc.UpdatePlan(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, plan)
}

func toCategories(reqs []spendingCategoryRequest) []entity.SpendingCategory {
	categories := make([]entity.SpendingCategory, 0, len(reqs))
	for _, r := range reqs {
		categories = append(categories, entity.SpendingCategory{
			ID:            r.ID,
			Name:          r.Name,
			PlannedAmount: r.PlannedAmount,
			ActualAmount:  r.ActualAmount,
		})
	}

	return categories
}
