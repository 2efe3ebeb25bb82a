package impl

import (
	"context"
	"fmt"
	"math"
	"time"

	"chamabook/config"
	"chamabook/internal/domain/entity"
	"chamabook/internal/domain/repository"
	"chamabook/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type dashboardService struct {
	memberRepo      repository.MemberRepository
	transactionRepo repository.TransactionRepository
	settingsRepo    repository.SettingsRepository
	cfg             *config.Config
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	MemberRepo      repository.MemberRepository
	TransactionRepo repository.TransactionRepository
	SettingsRepo    repository.SettingsRepository
	Config          *config.Config
}

// NewDashboardService creates the dashboard aggregation service.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		memberRepo:      params.MemberRepo,
		transactionRepo: params.TransactionRepo,
		settingsRepo:    params.SettingsRepo,
		cfg:             params.Config,
	}
}

// Stats recomputes the dashboard aggregates from the full collections.
func (s *dashboardService) Stats(ctx context.Context) (*usecase.DashboardStats, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list members")
	}

	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrSettingsNotFound) {
			return nil, errors.Wrap(err, "failed to get settings")
		}
		settings = nil
	}

	stats := &usecase.DashboardStats{
		ActiveMembers:   len(members),
		PendingDeposits: []usecase.PendingDeposit{},
	}
	for _, m := range members {
		stats.TotalSavings += m.TotalSaved
		stats.PendingTotal += m.Outstanding
	}

	if settings != nil && settings.TargetAmount > 0 {
		progress := stats.TotalSavings / settings.TargetAmount * 100
		stats.TargetProgress = math.Round(progress*10) / 10
	}

	windowDays := s.cfg.Ledger.MissedDepositWindowDays
	cutoff := time.Now().AddDate(0, 0, -windowDays)
	expected := s.cfg.Ledger.DailyMinimumFallback
	if settings != nil && settings.DailyMinimum > 0 {
		expected = settings.DailyMinimum
	}

	recentDeposit := make(map[string]bool)
	for _, t := range transactions {
		if t.Type != entity.TransactionDeposit {
			continue
		}
		date, ok := parseTransactionDate(t.Date)
		if ok && !date.Before(cutoff) {
			recentDeposit[t.MemberID] = true
		}
	}

	for _, m := range members {
		if recentDeposit[m.ID] {
			continue
		}
		stats.PendingDeposits = append(stats.PendingDeposits, usecase.PendingDeposit{
			ID:          m.ID,
			Name:        m.Name,
			MissedDates: fmt.Sprintf("Last %d days", windowDays),
			Amount:      expected,
		})
	}

	return stats, nil
}

// parseTransactionDate accepts the two date shapes clients actually send:
// full RFC 3339 timestamps and bare calendar dates.
func parseTransactionDate(raw string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}

	return time.Time{}, false
}
