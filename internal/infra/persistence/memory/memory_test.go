package memory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"chamabook/config"
	"chamabook/internal/domain/entity"
	"chamabook/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := &config.Config{
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
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(Params{Config: cfg, Logger: logger})
}

func TestStore_Seed(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	members, err := NewMemberRepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "m_01", members[0].ID)
	assert.Equal(t, "Jane Doe", members[0].Name)
	assert.Equal(t, 12300.0, members[0].TotalSaved)
	assert.Equal(t, 500.0, members[0].Outstanding)

	settings, err := NewSettingsRepository(store).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "settings_01", settings.ID)
	assert.Equal(t, 500000.0, settings.TargetAmount)
	assert.Equal(t, 50.0, settings.DailyMinimum)

	admins, err := NewAdminRepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin@example.com", admins[0].Email)

	faqs, err := NewFAQRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, faqs, 2)

	activities, err := NewActivityRepository(store).ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestMemberRepository_ReturnsCopies(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := NewMemberRepository(store)

	member, err := repo.FindByID(ctx, "m_01")
	require.NoError(t, err)

	// Mutating the returned value must not leak into the store.
	member.TotalSaved = 999999

	again, err := repo.FindByID(ctx, "m_01")
	require.NoError(t, err)
	assert.Equal(t, 12300.0, again.TotalSaved)
}

func TestMemberRepository_FindByEmail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := NewMemberRepository(store)

	member, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "m_01", member.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrMemberNotFound)
}

func TestActivityRepository_CapacityEviction(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := NewActivityRepository(store)

	for i := 0; i < 120; i++ {
		err := repo.Append(ctx, &entity.Activity{
			ID:          fmt.Sprintf("a_%03d", i),
			Type:        entity.ActivityDeposit,
			Description: fmt.Sprintf("entry %d", i),
			Timestamp:   time.Now(),
			ActorID:     "admin_01",
		})
		require.NoError(t, err)
	}

	all, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 100)

	// Newest first, with the oldest 20 evicted.
	assert.Equal(t, "a_119", all[0].ID)
	assert.Equal(t, "a_020", all[99].ID)

	five, err := repo.ListRecent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, five, 5)
	assert.Equal(t, "a_119", five[0].ID)
	assert.Equal(t, "a_115", five[4].ID)
}

func TestSettingsRepository_UpdateIDMismatch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := NewSettingsRepository(store)

	err := repo.Update(ctx, &entity.Settings{ID: "settings_99"})
	assert.ErrorIs(t, err, repository.ErrSettingsNotFound)
}

func TestPlanRepository_CloneCategories(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := NewPlanRepository(store)

	plan := &entity.PersonalPlan{
		ID:      "p_01",
		AdminID: "admin_01",
		Categories: []entity.SpendingCategory{
			{ID: "c_01", Name: "Rent", PlannedAmount: 8000},
		},
	}
	require.NoError(t, repo.Create(ctx, plan))

	got, err := repo.FindByAdmin(ctx, "admin_01")
	require.NoError(t, err)
	got.Categories[0].PlannedAmount = 1

	again, err := repo.FindByAdmin(ctx, "admin_01")
	require.NoError(t, err)
	assert.Equal(t, 8000.0, again.Categories[0].PlannedAmount)
}
