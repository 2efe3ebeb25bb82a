package handler

import (
	"fmt"
	"net/http"

	"chamabook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for the report export handler.
type ReportHandler struct {
	uc usecase.ReportUsecase
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Export handles GET /api/reports/export, serving the transaction ledger as
// a CSV attachment.
func (h *ReportHandler) Export(c echo.Context) error {
	report, err := h.uc.ExportTransactionsCSV(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s", report.Filename))

	return c.Blob(http.StatusOK, "text/csv", report.Content)
}
