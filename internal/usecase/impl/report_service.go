package impl

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"chamabook/internal/domain/repository"
	"chamabook/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reportService struct {
	transactionRepo repository.TransactionRepository
	memberRepo      repository.MemberRepository
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	TransactionRepo repository.TransactionRepository
	MemberRepo      repository.MemberRepository
}

// NewReportService creates the CSV export service.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		transactionRepo: params.TransactionRepo,
		memberRepo:      params.MemberRepo,
	}
}

// ExportTransactionsCSV renders the full transaction ledger as CSV. Member
// and note fields are quoted; names of deleted members fall back to
// "Unknown".
func (s *reportService) ExportTransactionsCSV(ctx context.Context) (*usecase.TransactionReport, error) {
	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list members")
	}
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	var b strings.Builder
	b.WriteString("Date,Member,Type,Amount,Note\n")
	for _, t := range transactions {
		name, ok := names[t.MemberID]
		if !ok {
			name = "Unknown"
		}
		amount := strconv.FormatFloat(t.Amount, 'f', -1, 64)
		b.WriteString(fmt.Sprintf("%s,%q,%s,%s,%q\n", t.Date, name, t.Type, amount, t.Note))
	}

	return &usecase.TransactionReport{
		Filename: fmt.Sprintf("transactions-%d.csv", time.Now().UnixMilli()),
		Content:  []byte(b.String()),
	}, nil
}
