package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"chamabook/internal/domain/entity"
	"chamabook/internal/infra/persistence/memory"
	"chamabook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardFixture struct {
	dashboard usecase.DashboardUsecase
	ledger    usecase.LedgerUsecase
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()

	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New(memory.Params{Config: cfg, Logger: logger})

	memberRepo := memory.NewMemberRepository(store)
	txRepo := memory.NewTransactionRepository(store)

	return &dashboardFixture{
		dashboard: NewDashboardService(DashboardServiceParams{
			MemberRepo:      memberRepo,
			TransactionRepo: txRepo,
			SettingsRepo:    memory.NewSettingsRepository(store),
			Config:          cfg,
		}),
		ledger: NewLedgerService(LedgerServiceParams{
			TransactionRepo: txRepo,
			LoanRepo:        memory.NewLoanRepository(store),
			MemberRepo:      memberRepo,
			ActivityRepo:    memory.NewActivityRepository(store),
			Config:          cfg,
		}),
	}
}

func TestDashboardStats_SeededAggregates(t *testing.T) {
	f := newDashboardFixture(t)

	stats, err := f.dashboard.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.ActiveMembers)
	assert.Equal(t, 36000.0, stats.TotalSavings)
	assert.Equal(t, 1500.0, stats.PendingTotal)
	// 36000 / 500000 * 100 = 7.2
	assert.Equal(t, 7.2, stats.TargetProgress)

	// No transactions seeded, so every member has missed the window.
	require.Len(t, stats.PendingDeposits, 3)
	assert.Equal(t, "m_01", stats.PendingDeposits[0].ID)
	assert.Equal(t, "Jane Doe", stats.PendingDeposits[0].Name)
	assert.Equal(t, "Last 2 days", stats.PendingDeposits[0].MissedDates)
	assert.Equal(t, 50.0, stats.PendingDeposits[0].Amount)
}

func TestDashboardStats_RecentDepositClearsPending(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	_, err := f.ledger.CreateTransaction(ctx, usecase.CreateTransactionInput{
		MemberID:  "m_01",
		Type:      entity.TransactionDeposit,
		Amount:    200,
		Date:      time.Now().Format(time.RFC3339),
		CreatedBy: "admin_01",
	})
	require.NoError(t, err)

	stats, err := f.dashboard.Stats(ctx)
	require.NoError(t, err)

	require.Len(t, stats.PendingDeposits, 2)
	for _, p := range stats.PendingDeposits {
		assert.NotEqual(t, "m_01", p.ID)
	}
}

func TestDashboardStats_OldDepositStaysPending(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	_, err := f.ledger.CreateTransaction(ctx, usecase.CreateTransactionInput{
		MemberID:  "m_01",
		Type:      entity.TransactionDeposit,
		Amount:    200,
		Date:      time.Now().AddDate(0, 0, -10).Format("2006-01-02"),
		CreatedBy: "admin_01",
	})
	require.NoError(t, err)

	stats, err := f.dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.Len(t, stats.PendingDeposits, 3)
}
