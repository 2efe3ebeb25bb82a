package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"chamabook/internal/domain/entity"
	"chamabook/internal/infra/persistence/memory"
	"chamabook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportFixture(t *testing.T) (usecase.ReportUsecase, usecase.LedgerUsecase) {
	t.Helper()

	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New(memory.Params{Config: cfg, Logger: logger})

	memberRepo := memory.NewMemberRepository(store)
	txRepo := memory.NewTransactionRepository(store)

	report := NewReportService(ReportServiceParams{
		TransactionRepo: txRepo,
		MemberRepo:      memberRepo,
	})
	ledger := NewLedgerService(LedgerServiceParams{
		TransactionRepo: txRepo,
		LoanRepo:        memory.NewLoanRepository(store),
		MemberRepo:      memberRepo,
		ActivityRepo:    memory.NewActivityRepository(store),
		Config:          cfg,
	})

	return report, ledger
}

func TestExportTransactionsCSV_Empty(t *testing.T) {
	report, _ := newReportFixture(t)

	out, err := report.ExportTransactionsCSV(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Filename, "transactions-"))
	assert.True(t, strings.HasSuffix(out.Filename, ".csv"))
	assert.Equal(t, "Date,Member,Type,Amount,Note\n", string(out.Content))
}

func TestExportTransactionsCSV_Rows(t *testing.T) {
	report, ledger := newReportFixture(t)
	ctx := context.Background()

	_, err := ledger.CreateTransaction(ctx, usecase.CreateTransactionInput{
		MemberID:  "m_01",
		Type:      entity.TransactionDeposit,
		Amount:    500.5,
		Date:      "2026-01-15",
		Note:      "Week 3",
		CreatedBy: "admin_01",
	})
	require.NoError(t, err)

	_, err = ledger.CreateTransaction(ctx, usecase.CreateTransactionInput{
		MemberID:  "m_99",
		Type:      entity.TransactionWithdraw,
		Amount:    100,
		Date:      "2026-01-16",
		CreatedBy: "admin_01",
	})
	require.NoError(t, err)

	out, err := report.ExportTransactionsCSV(ctx)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out.Content), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Member,Type,Amount,Note", lines[0])
	assert.Equal(t, `2026-01-15,"Jane Doe",deposit,500.5,"Week 3"`, lines[1])
	// Names of unknown members fall back to "Unknown".
	assert.Equal(t, `2026-01-16,"Unknown",withdraw,100,""`, lines[2])
}
