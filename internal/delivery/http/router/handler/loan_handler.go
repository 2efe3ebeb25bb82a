package handler

import (
	"net/http"

	"chamabook/internal/delivery/http/response"
	"chamabook/internal/domain/entity"
	"chamabook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createLoanRequest is the wire shape of a loan approval. Outstanding and
// status are computed server-side.
type createLoanRequest struct {
	MemberID     string  `json:"memberId" validate:"required"`
	Principal    float64 `json:"principal" validate:"required,gt=0"`
	InterestRate float64 `json:"interestRate" validate:"gte=0"`
}

// updateLoanRequest enumerates the patchable loan fields.
type updateLoanRequest struct {
	MemberID     *string  `json:"memberId"`
	Principal    *float64 `json:"principal"`
	InterestRate *float64 `json:"interestRate"`
	Outstanding  *float64 `json:"outstanding"`
	Status       *string  `json:"status"`
}

// LoanHandler holds dependencies for loan-related handlers.
type LoanHandler struct {
	uc usecase.LedgerUsecase
}

// NewLoanHandler is the constructor for LoanHandler, injected by Fx.
func NewLoanHandler(uc usecase.LedgerUsecase) *LoanHandler {
	return &LoanHandler{uc: uc}
}

// List handles GET /api/loans, optionally filtered by memberId.
func (h *LoanHandler) List(c echo.Context) error {
	loans, err := h.uc.ListLoans(c.Request().Context(), c.QueryParam("memberId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, loans)
}

// Create handles POST /api/loans.
func (h *LoanHandler) Create(c echo.Context) error {
	var req createLoanRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	loan, err := h.uc.CreateLoan(c.Request().Context(), usecase.CreateLoanInput{
		MemberID:     req.MemberID,
		Principal:    req.Principal,
		InterestRate: req.InterestRate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, loan)
}

// Update handles PATCH /api/loans/:id.
func (h *LoanHandler) Update(c echo.Context) error {
	var req updateLoanRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := usecase.UpdateLoanInput{
		MemberID:     req.MemberID,
		Principal:    req.Principal,
		InterestRate: req.InterestRate,
		Outstanding:  req.Outstanding,
	}
	if req.Status != nil {
		status := entity.LoanStatus(*req.Status)
		input.Status = &status
	}

	loan, err := h.uc.UpdateLoan(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, loan)
}
