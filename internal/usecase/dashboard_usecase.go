package usecase

import "context"

// PendingDeposit flags a member with no recent deposit.
type PendingDeposit struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	MissedDates string  `json:"missedDates"`
	Amount      float64 `json:"amount"`
}

// DashboardStats is the aggregate view rendered on the dashboard. It is
// recomputed from the full collections on every request.
type DashboardStats struct {
	ActiveMembers   int              `json:"activeMembers"`
	TotalSavings    float64          `json:"totalSavings"`
	PendingTotal    float64          `json:"pendingTotal"`
	TargetProgress  float64          `json:"targetProgress"`
	PendingDeposits []PendingDeposit `json:"pendingDeposits"`
}

// DashboardUsecase defines the dashboard aggregation use case.
type DashboardUsecase interface {
	// Stats aggregates member counts, savings totals, outstanding totals,
	// target progress, and missed-deposit detection.
	Stats(ctx context.Context) (*DashboardStats, error)
}
