package repository

import (
	"context"

	"chamabook/internal/domain/entity"
)

// ActivityRepository defines the operations for the append-only activity
// feed. The feed is capacity-bounded: the store silently evicts the oldest
// entries once the bound is exceeded.
type ActivityRepository interface {
	// Append adds an activity to the end of the feed, evicting the oldest
	// entries past the store's capacity.
	Append(ctx context.Context, activity *entity.Activity) error

	// ListRecent retrieves the most recent limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]entity.Activity, error)
}
