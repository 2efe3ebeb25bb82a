package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"chamabook/config"
	"chamabook/internal/domain/entity"
	"chamabook/internal/domain/repository"
	"chamabook/internal/infra/persistence/memory"
	"chamabook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ledgerFixture wires the ledger service against a freshly seeded store.
type ledgerFixture struct {
	ledger       usecase.LedgerUsecase
	memberRepo   repository.MemberRepository
	txRepo       repository.TransactionRepository
	activityRepo repository.ActivityRepository
}

func testConfig() *config.Config {
	return &config.Config{
		Ledger: config.LedgerConfig{
			Currency:                "KES",
			DailyMinimumFallback:    50,
			MissedDepositWindowDays: 2,
		},
		ActivityFeed: config.ActivityFeedConfig{
			Capacity:    100,
			RecentLimit: 10,
		},
	}
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New(memory.Params{Config: cfg, Logger: logger})

	memberRepo := memory.NewMemberRepository(store)
	txRepo := memory.NewTransactionRepository(store)
	activityRepo := memory.NewActivityRepository(store)

	ledger := NewLedgerService(LedgerServiceParams{
		TransactionRepo: txRepo,
		LoanRepo:        memory.NewLoanRepository(store),
		MemberRepo:      memberRepo,
		ActivityRepo:    activityRepo,
		Config:          cfg,
	})

	return &ledgerFixture{
		ledger:       ledger,
		memberRepo:   memberRepo,
		txRepo:       txRepo,
		activityRepo: activityRepo,
	}
}

func TestCreateTransaction_DepositRaisesTotalSaved(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	tx, err := f.ledger.CreateTransaction(ctx, usecase.CreateTransactionInput{
		MemberID:  "m_01",
		Type:      entity.TransactionDeposit,
		Amount:    500,
		Date:      "2026-01-15",
		CreatedBy: "admin_01",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, "2026-01-15", tx.Date)

	member, err := f.memberRepo.FindByID(ctx, "m_01")
	require.NoError(t, err)
	assert.Equal(t, 12800.0, member.TotalSaved)

	activities, err := f.activityRepo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, entity.ActivityDeposit, activities[0].Type)
	assert.Equal(t, "Jane Doe deposited KES 500", activities[0].Description)
	assert.Equal(t, "admin_01", activities[0].ActorID)
}

func TestCreateTransaction_WithdrawHasNoFloor(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.ledger.CreateTransaction(ctx, usecase.CreateTransactionInput{
		MemberID:  "m_02",
		Type:      entity.TransactionWithdraw,
		Amount:    20000,
		Date:      "2026-01-15",
		CreatedBy: "admin_01",
	})
	require.NoError(t, err)

	member, err := f.memberRepo.FindByID(ctx, "m_02")
	require.NoError(t, err)
	assert.Equal(t, -11500.0, member.TotalSaved)
}

func TestCreateTransaction_UnknownMemberAccepted(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	tx, err := f.ledger.CreateTransaction(ctx, usecase.CreateTransactionInput{
		MemberID:  "m_99",
		Type:      entity.TransactionDeposit,
		Amount:    100,
		Date:      "2026-01-15",
		CreatedBy: "admin_01",
	})
	require.NoError(t, err)

	stored, err := f.txRepo.FindByID(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, "m_99", stored.MemberID)

	// The description falls back to a generic name.
	activities, err := f.activityRepo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Member deposited KES 100", activities[0].Description)
}

func TestCreateTransaction_RequestOrderSum(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	amounts := []struct {
		typ    entity.TransactionType
		amount float64
	}{
		{entity.TransactionDeposit, 1000},
		{entity.TransactionWithdraw, 300},
		{entity.TransactionDeposit, 250},
	}
	for _, a := range amounts {
		_, err := f.ledger.CreateTransaction(ctx, usecase.CreateTransactionInput{
			MemberID:  "m_02",
			Type:      a.typ,
			Amount:    a.amount,
			Date:      "2026-01-15",
			CreatedBy: "admin_01",
		})
		require.NoError(t, err)
	}

	member, err := f.memberRepo.FindByID(ctx, "m_02")
	require.NoError(t, err)
	assert.Equal(t, 8500.0+1000-300+250, member.TotalSaved)
}

func TestCreateLoan_SimpleInterestAndDisbursement(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	loan, err := f.ledger.CreateLoan(ctx, usecase.CreateLoanInput{
		MemberID:     "m_02",
		Principal:    1000,
		InterestRate: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1100.0, loan.Outstanding)
	assert.Equal(t, entity.LoanActive, loan.Status)

	member, err := f.memberRepo.FindByID(ctx, "m_02")
	require.NoError(t, err)
	assert.Equal(t, 1100.0, member.Outstanding)
	// Savings are untouched by loan disbursement.
	assert.Equal(t, 8500.0, member.TotalSaved)

	transactions, err := f.txRepo.ListByMember(ctx, "m_02")
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, entity.TransactionLoanDisbursement, transactions[0].Type)
	assert.Equal(t, 1000.0, transactions[0].Amount)
	assert.Equal(t, "Loan disbursement", transactions[0].Note)

	activities, err := f.activityRepo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, entity.ActivityLoanApproved, activities[0].Type)
	assert.Equal(t, "Loan approved for John Smith - KES 1,000", activities[0].Description)
}

func TestUpdateLoan_RepaymentMirrorsMember(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	loan, err := f.ledger.CreateLoan(ctx, usecase.CreateLoanInput{
		MemberID:     "m_02",
		Principal:    1000,
		InterestRate: 10,
	})
	require.NoError(t, err)

	outstanding := 600.0
	updated, err := f.ledger.UpdateLoan(ctx, loan.ID, usecase.UpdateLoanInput{
		Outstanding: &outstanding,
	})
	require.NoError(t, err)
	assert.Equal(t, 600.0, updated.Outstanding)
	assert.Equal(t, entity.LoanActive, updated.Status)

	member, err := f.memberRepo.FindByID(ctx, "m_02")
	require.NoError(t, err)
	assert.Equal(t, 600.0, member.Outstanding)

	activities, err := f.activityRepo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, entity.ActivityLoanRepayment, activities[0].Type)
	assert.Equal(t, "John Smith repaid KES 500 towards loan", activities[0].Description)
}

func TestUpdateLoan_ZeroOutstandingFlipsToPaid(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	loan, err := f.ledger.CreateLoan(ctx, usecase.CreateLoanInput{
		MemberID:     "m_02",
		Principal:    1000,
		InterestRate: 10,
	})
	require.NoError(t, err)

	zero := 0.0
	updated, err := f.ledger.UpdateLoan(ctx, loan.ID, usecase.UpdateLoanInput{
		Outstanding: &zero,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.LoanPaid, updated.Status)

	member, err := f.memberRepo.FindByID(ctx, "m_02")
	require.NoError(t, err)
	assert.Equal(t, 0.0, member.Outstanding)
}

func TestUpdateLoan_NotFound(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.ledger.UpdateLoan(context.Background(), "loan_99", usecase.UpdateLoanInput{})
	assert.EqualError(t, err, "Loan not found")
}
