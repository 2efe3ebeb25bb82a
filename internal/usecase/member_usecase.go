// Package usecase defines the application-layer interfaces and their
// input types. Handlers depend on these interfaces; implementations live
// in usecase/impl.
package usecase

import (
	"context"

	"chamabook/internal/domain/entity"
)

// CreateMemberInput carries the fields accepted when registering a member.
// TotalSaved and Outstanding always start at zero.
type CreateMemberInput struct {
	Name      string
	Phone     string
	Email     string
	AvatarURL *string
	JoinedAt  string
	Reason    string
}

// UpdateMemberInput enumerates the member fields a patch may legitimately
// change. Nil pointers leave the field untouched; aggregates (TotalSaved,
// Outstanding) are owned by the ledger mutators and cannot be patched.
type UpdateMemberInput struct {
	Name      *string
	Phone     *string
	Email     *string
	AvatarURL *string
	Reason    *string
}

// MemberUsecase defines the member management use cases.
type MemberUsecase interface {
	// ListMembers retrieves all members.
	ListMembers(ctx context.Context) ([]entity.Member, error)

	// GetMember retrieves a single member by ID.
	GetMember(ctx context.Context, id string) (*entity.Member, error)

	// CreateMember registers a new member and records a member_added activity.
	// Fails when the email is already taken.
	CreateMember(ctx context.Context, input CreateMemberInput) (*entity.Member, error)

	// UpdateMember applies a partial update to a member.
	UpdateMember(ctx context.Context, id string, input UpdateMemberInput) (*entity.Member, error)

	// DeleteMember removes a member and records a member_deleted activity.
	DeleteMember(ctx context.Context, id string) error
}
