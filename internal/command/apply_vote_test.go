package command

import (
	"context"
	"errors"
	"testing"

	"github.com/jbeshir/product-showcase/internal/datasources/mocks"
	"github.com/jbeshir/product-showcase/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplyVote_Execute(t *testing.T) {
	member := domain.Principal{UserID: "user_1", OrganizationID: "org_1"}

	cases := []struct {
		name        string
		principal   domain.Principal
		direction   domain.VoteDirection
		applyErr    error
		invalidErr  error
		ledgerErr   error
		wantApply   bool
		wantSuccess bool
		wantMessage string
		wantErr     error
	}{
		{
			name:        "upvote",
			principal:   member,
			direction:   domain.VoteUp,
			wantApply:   true,
			wantSuccess: true,
			wantMessage: "Product upvoted successfully!",
		},
		{
			name:        "downvote",
			principal:   member,
			direction:   domain.VoteDown,
			wantApply:   true,
			wantSuccess: true,
			wantMessage: "Product downvoted successfully!",
		},
		{
			name:        "unauthenticated",
			direction:   domain.VoteUp,
			wantMessage: "You must be logged in to upvote a product",
			wantErr:     domain.ErrUnauthenticated,
		},
		{
			name:        "no_organization",
			principal:   domain.Principal{UserID: "user_1"},
			direction:   domain.VoteDown,
			wantMessage: "You must be a member of an organization to downvote a product",
			wantErr:     domain.ErrUnauthorized,
		},
		{
			name:        "invalid_direction",
			principal:   member,
			direction:   domain.VoteDirection(2),
			wantMessage: "Invalid vote direction",
			wantErr:     domain.ErrInvalidVoteDirection,
		},
		{
			name:        "not_found",
			principal:   member,
			direction:   domain.VoteUp,
			applyErr:    domain.ErrNotFound,
			wantApply:   true,
			wantMessage: "Product not found",
			wantErr:     domain.ErrNotFound,
		},
		{
			name:        "persistence_error",
			principal:   member,
			direction:   domain.VoteUp,
			applyErr:    errors.New("connection refused"),
			wantApply:   true,
			wantMessage: "Upvote failed!",
			wantErr:     domain.ErrPersistence,
		},
		{
			name:        "invalidation_error_still_succeeds",
			principal:   member,
			direction:   domain.VoteUp,
			invalidErr:  errors.New("redis down"),
			wantApply:   true,
			wantSuccess: true,
			wantMessage: "Product upvoted successfully!",
		},
		{
			name:        "ledger_error_still_succeeds",
			principal:   member,
			direction:   domain.VoteDown,
			ledgerErr:   errors.New("deadlock"),
			wantApply:   true,
			wantSuccess: true,
			wantMessage: "Product downvoted successfully!",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			applier := mocks.NewMockProductVoteApplier(t)
			invalidator := mocks.NewMockListingInvalidator(t)
			recorder := mocks.NewMockProductVoteRecorder(t)

			if tc.wantApply {
				applier.EXPECT().
					ApplyProductVote(mock.Anything, int64(42), tc.direction).
					Return(tc.applyErr)
			}
			if tc.wantSuccess {
				invalidator.EXPECT().
					InvalidateListings(mock.Anything).
					Return(tc.invalidErr)
				if tc.direction == domain.VoteUp {
					recorder.EXPECT().
						RecordProductVote(mock.Anything, tc.principal.UserID, int64(42)).
						Return(tc.ledgerErr)
				} else {
					recorder.EXPECT().
						RemoveProductVote(mock.Anything, tc.principal.UserID, int64(42)).
						Return(tc.ledgerErr)
				}
			}

			cmd := NewApplyVote(applier, invalidator, recorder)

			ctx := domain.ContextWithLogger(context.Background(), testLogger())
			ctx = domain.ContextWithPrincipal(ctx, tc.principal)

			result, err := cmd.Execute(ctx, ApplyVoteRequest{ProductID: 42, Direction: tc.direction})
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.wantSuccess, result.Success)
			assert.Equal(t, tc.wantMessage, result.Message)
		})
	}
}

func TestApplyVote_UpvoteDownvote(t *testing.T) {
	applier := mocks.NewMockProductVoteApplier(t)
	invalidator := mocks.NewMockListingInvalidator(t)
	recorder := mocks.NewMockProductVoteRecorder(t)

	applier.EXPECT().ApplyProductVote(mock.Anything, int64(7), domain.VoteUp).Return(nil).Once()
	applier.EXPECT().ApplyProductVote(mock.Anything, int64(7), domain.VoteDown).Return(nil).Once()
	invalidator.EXPECT().InvalidateListings(mock.Anything).Return(nil).Twice()
	recorder.EXPECT().RecordProductVote(mock.Anything, "user_1", int64(7)).Return(nil).Once()
	recorder.EXPECT().RemoveProductVote(mock.Anything, "user_1", int64(7)).Return(nil).Once()

	cmd := NewApplyVote(applier, invalidator, recorder)
	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	ctx = domain.ContextWithPrincipal(ctx, domain.Principal{UserID: "user_1", OrganizationID: "org_1"})

	up, err := cmd.Upvote(ctx, 7)
	require.NoError(t, err)
	assert.True(t, up.Success)

	down, err := cmd.Downvote(ctx, 7)
	require.NoError(t, err)
	assert.True(t, down.Success)
}
