package handler

import (
	"net/http"

	"chamabook/internal/delivery/http/response"
	"chamabook/internal/domain/entity"
	"chamabook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createTransactionRequest is the wire shape of a ledger transaction. The
// date is kept verbatim as the client sent it.
type createTransactionRequest struct {
	MemberID  string  `json:"memberId" validate:"required"`
	Type      string  `json:"type" validate:"required,oneof=deposit withdraw loan_disbursement loan_repayment"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Date      string  `json:"date" validate:"required"`
	Note      string  `json:"note"`
	CreatedBy string  `json:"createdBy"`
}

// TransactionHandler holds dependencies for transaction-related handlers.
type TransactionHandler struct {
	uc usecase.LedgerUsecase
}

// NewTransactionHandler is the constructor for TransactionHandler, injected by Fx.
func NewTransactionHandler(uc usecase.LedgerUsecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// List handles GET /api/transactions, optionally filtered by memberId.
func (h *TransactionHandler) List(c echo.Context) error {
	transactions, err := h.uc.ListTransactions(c.Request().Context(), c.QueryParam("memberId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, transactions)
}

// Create handles POST /api/transactions.
func (h *TransactionHandler) Create(c echo.Context) error {
	var req createTransactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, err := h.uc.CreateTransaction(c.Request().Context(), usecase.CreateTransactionInput{
		MemberID:  req.MemberID,
		Type:      entity.TransactionType(req.Type),
		Amount:    req.Amount,
		Date:      req.Date,
		Note:      req.Note,
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, transaction)
}
