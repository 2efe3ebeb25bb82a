package usecase

import (
	"context"

	"chamabook/internal/domain/entity"
)

// ActivityUsecase defines the read side of the activity feed. Entries are
// only ever written as side effects of other mutations.
type ActivityUsecase interface {
	// ListRecent retrieves the most recent limit entries, newest first.
	// A non-positive limit falls back to the configured default.
	ListRecent(ctx context.Context, limit int) ([]entity.Activity, error)
}
