package usecase

import (
	"context"

	"chamabook/internal/domain/entity"
)

// CreateFAQInput carries the fields of a new FAQ.
type CreateFAQInput struct {
	Question string
	Answer   string
}

// UpdateFAQInput enumerates the FAQ fields a patch may change.
type UpdateFAQInput struct {
	Question *string
	Answer   *string
}

// FAQUsecase defines the FAQ use cases.
type FAQUsecase interface {
	// ListFAQs retrieves all FAQs.
	ListFAQs(ctx context.Context) ([]entity.FAQ, error)

	// CreateFAQ stores a new FAQ.
	CreateFAQ(ctx context.Context, input CreateFAQInput) (*entity.FAQ, error)

	// UpdateFAQ applies a partial update to a FAQ.
	UpdateFAQ(ctx context.Context, id string, input UpdateFAQInput) (*entity.FAQ, error)

	// DeleteFAQ removes a FAQ.
	DeleteFAQ(ctx context.Context, id string) error
}
