package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "chamabook/internal/domain/errors"
	"chamabook/internal/domain/repository"
	"chamabook/internal/infra/persistence/memory"
	"chamabook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memberFixture struct {
	members      usecase.MemberUsecase
	memberRepo   repository.MemberRepository
	activityRepo repository.ActivityRepository
}

func newMemberFixture(t *testing.T) *memberFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New(memory.Params{Config: testConfig(), Logger: logger})

	memberRepo := memory.NewMemberRepository(store)
	activityRepo := memory.NewActivityRepository(store)

	return &memberFixture{
		members: NewMemberService(MemberServiceParams{
			MemberRepo:   memberRepo,
			ActivityRepo: activityRepo,
		}),
		memberRepo:   memberRepo,
		activityRepo: activityRepo,
	}
}

func TestCreateMember_StartsWithZeroAggregates(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	member, err := f.members.CreateMember(ctx, usecase.CreateMemberInput{
		Name:   "Alice Wanjiku",
		Phone:  "+254745678901",
		Email:  "alice@example.com",
		Reason: "Land purchase",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, 0.0, member.TotalSaved)
	assert.Equal(t, 0.0, member.Outstanding)

	activities, err := f.activityRepo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "New member added: Alice Wanjiku", activities[0].Description)
}

func TestCreateMember_DuplicateEmail(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	_, err := f.members.CreateMember(ctx, usecase.CreateMemberInput{
		Name:  "Jane Clone",
		Email: "jane@example.com",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailExists)

	// Nothing was created.
	members, err := f.members.ListMembers(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 3)
}

func TestUpdateMember_PartialPatch(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	phone := "+254799999999"
	member, err := f.members.UpdateMember(ctx, "m_01", usecase.UpdateMemberInput{
		Phone: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, "+254799999999", member.Phone)
	// Untouched fields survive.
	assert.Equal(t, "Jane Doe", member.Name)
	assert.Equal(t, 12300.0, member.TotalSaved)
}

func TestDeleteMember_AppendsActivity(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	require.NoError(t, f.members.DeleteMember(ctx, "m_03"))

	_, err := f.members.GetMember(ctx, "m_03")
	assert.ErrorIs(t, err, domainerrors.ErrMemberNotFound)

	activities, err := f.activityRepo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Member deleted: Mary Johnson", activities[0].Description)
}

func TestGetMember_NotFound(t *testing.T) {
	f := newMemberFixture(t)

	_, err := f.members.GetMember(context.Background(), "m_99")
	assert.ErrorIs(t, err, domainerrors.ErrMemberNotFound)
}
