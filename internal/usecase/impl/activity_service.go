package impl

import (
	"context"

	"chamabook/config"
	"chamabook/internal/domain/entity"
	"chamabook/internal/domain/repository"
	"chamabook/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type activityService struct {
	activityRepo repository.ActivityRepository
	defaultLimit int
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
	Config       *config.Config
}

// NewActivityService creates the activity feed read service.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: params.ActivityRepo,
		defaultLimit: params.Config.ActivityFeed.RecentLimit,
	}
}

// ListRecent retrieves the most recent limit entries, newest first. A
// non-positive limit falls back to the configured default.
func (s *activityService) ListRecent(ctx context.Context, limit int) ([]entity.Activity, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	activities, err := s.activityRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent activities")
	}

	return activities, nil
}
