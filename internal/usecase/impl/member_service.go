package impl

import (
	"context"
	"fmt"
	"time"

	"chamabook/internal/domain/entity"
	domainerrors "chamabook/internal/domain/errors"
	"chamabook/internal/domain/repository"
	"chamabook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type memberService struct {
	memberRepo   repository.MemberRepository
	activityRepo repository.ActivityRepository
}

// MemberServiceParams holds dependencies for MemberService, injected by Fx.
type MemberServiceParams struct {
	fx.In

	MemberRepo   repository.MemberRepository
	ActivityRepo repository.ActivityRepository
}

// NewMemberService creates the member management service.
func NewMemberService(params MemberServiceParams) usecase.MemberUsecase {
	return &memberService{
		memberRepo:   params.MemberRepo,
		activityRepo: params.ActivityRepo,
	}
}

// ListMembers retrieves all members.
func (s *memberService) ListMembers(ctx context.Context) ([]entity.Member, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list members")
	}

	return members, nil
}

// GetMember retrieves a single member by ID.
func (s *memberService) GetMember(ctx context.Context, id string) (*entity.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domainerrors.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member")
	}

	return member, nil
}

// CreateMember registers a new member with zeroed aggregates and records a
// member_added activity. The email must not already be taken.
func (s *memberService) CreateMember(ctx context.Context, input usecase.CreateMemberInput) (*entity.Member, error) {
	existing, err := s.memberRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrMemberNotFound) {
		return nil, errors.Wrap(err, "failed to find member by email")
	}
	if existing != nil {
		return nil, domainerrors.ErrEmailExists
	}

	member := &entity.Member{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		AvatarURL: input.AvatarURL,
		JoinedAt:  input.JoinedAt,
		Reason:    input.Reason,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, errors.Wrap(err, "failed to create member")
	}

	if err := s.appendActivity(ctx, entity.ActivityMemberAdded, fmt.Sprintf("New member added: %s", member.Name)); err != nil {
		return nil, err
	}

	return member, nil
}

// UpdateMember applies a partial update to a member. Aggregates are owned by
// the ledger mutators and are not patchable here.
func (s *memberService) UpdateMember(ctx context.Context, id string, input usecase.UpdateMemberInput) (*entity.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domainerrors.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member")
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.Phone != nil {
		member.Phone = *input.Phone
	}
	if input.Email != nil {
		member.Email = *input.Email
	}
	if input.AvatarURL != nil {
		member.AvatarURL = input.AvatarURL
	}
	if input.Reason != nil {
		member.Reason = *input.Reason
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, errors.Wrap(err, "failed to update member")
	}

	return member, nil
}

// DeleteMember removes a member and records a member_deleted activity.
func (s *memberService) DeleteMember(ctx context.Context, id string) error {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return domainerrors.ErrMemberNotFound
		}

		return errors.Wrap(err, "failed to find member")
	}

	if err := s.memberRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete member")
	}

	return s.appendActivity(ctx, entity.ActivityMemberDeleted, fmt.Sprintf("Member deleted: %s", member.Name))
}

func (s *memberService) appendActivity(ctx context.Context, activityType entity.ActivityType, description string) error {
	activity := &entity.Activity{
		ID:          uuid.New().String(),
		Type:        activityType,
		Description: description,
		Timestamp:   time.Now(),
		ActorID:     defaultActorID,
	}
	if err := s.activityRepo.Append(ctx, activity); err != nil {
		return errors.Wrap(err, "failed to append activity")
	}

	return nil
}
