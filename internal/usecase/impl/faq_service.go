package impl

import (
	"context"

	"chamabook/internal/domain/entity"
	domainerrors "chamabook/internal/domain/errors"
	"chamabook/internal/domain/repository"
	"chamabook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type faqService struct {
	faqRepo repository.FAQRepository
}

// FAQServiceParams holds dependencies for FAQService, injected by Fx.
type FAQServiceParams struct {
	fx.In

	FAQRepo repository.FAQRepository
}

// NewFAQService creates the FAQ service.
func NewFAQService(params FAQServiceParams) usecase.FAQUsecase {
	return &faqService{faqRepo: params.FAQRepo}
}

// ListFAQs retrieves all FAQs.
func (s *faqService) ListFAQs(ctx context.Context) ([]entity.FAQ, error) {
	faqs, err := s.faqRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list faqs")
	}

	return faqs, nil
}

// CreateFAQ stores a new FAQ.
func (s *faqService) CreateFAQ(ctx context.Context, input usecase.CreateFAQInput) (*entity.FAQ, error) {
	faq := &entity.FAQ{
		ID:       uuid.New().String(),
		Question: input.Question,
		Answer:   input.Answer,
	}
	if err := s.faqRepo.Create(ctx, faq); err != nil {
		return nil, errors.Wrap(err, "failed to create faq")
	}

	return faq, nil
}

// UpdateFAQ applies a partial update to a FAQ.
func (s *faqService) UpdateFAQ(ctx context.Context, id string, input usecase.UpdateFAQInput) (*entity.FAQ, error) {
	faq, err := s.faqRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFAQNotFound) {
			return nil, domainerrors.ErrFAQNotFound
		}

		return nil, errors.Wrap(err, "failed to find faq")
	}

	if input.Question != nil {
		faq.Question = *input.Question
	}
	if input.Answer != nil {
		faq.Answer = *input.Answer
	}

	if err := s.faqRepo.Update(ctx, faq); err != nil {
		return nil, errors.Wrap(err, "failed to update faq")
	}

	return faq, nil
}

// DeleteFAQ removes a FAQ.
func (s *faqService) DeleteFAQ(ctx context.Context, id string) error {
	if err := s.faqRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFAQNotFound) {
			return domainerrors.ErrFAQNotFound
		}

		return errors.Wrap(err, "failed to delete faq")
	}

	return nil
}
