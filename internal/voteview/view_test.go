package voteview

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jbeshir/product-showcase/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedVoter blocks each call until release is closed, then answers with result and err.
type gatedVoter struct {
	started chan struct{}
	release chan struct{}
	result  domain.VoteResult
	err     error

	upvotes, downvotes atomic.Int32
}

func newGatedVoter(result domain.VoteResult, err error) *gatedVoter {
	return &gatedVoter{
		started: make(chan struct{}, 16),
		release: make(chan struct{}),
		result:  result,
		err:     err,
	}
}

func (g *gatedVoter) Upvote(ctx context.Context, _ int64) (domain.VoteResult, error) {
	g.upvotes.Add(1)
	return g.wait(ctx)
}

func (g *gatedVoter) Downvote(ctx context.Context, _ int64) (domain.VoteResult, error) {
	g.downvotes.Add(1)
	return g.wait(ctx)
}

func (g *gatedVoter) wait(ctx context.Context) (domain.VoteResult, error) {
	g.started <- struct{}{}
	select {
	case <-g.release:
		return g.result, g.err
	case <-ctx.Done():
		return domain.VoteResult{}, ctx.Err()
	}
}

func succeeded(verb string) domain.VoteResult {
	return domain.VoteResult{Success: true, Message: "Product " + verb + "d successfully!"}
}

func TestView_UpvoteSuccessKeepsPrediction(t *testing.T) {
	voter := newGatedVoter(succeeded("upvote"), nil)
	view := New(1, 5, false, voter)

	done := make(chan error, 1)
	go func() {
		_, err := view.Upvote(context.Background())
		done <- err
	}()
	<-voter.started

	assert.Equal(t, int64(6), view.Count())
	assert.True(t, view.Pending())
	assert.False(t, view.UpvoteEnabled())
	assert.False(t, view.DownvoteEnabled())

	close(voter.release)
	require.NoError(t, <-done)

	assert.Equal(t, int64(6), view.Count())
	assert.Equal(t, PhaseSettled, view.Phase())
	assert.True(t, view.UpvoteEnabled())
}

func TestView_DoubleSubmitIsNoOp(t *testing.T) {
	voter := newGatedVoter(succeeded("upvote"), nil)
	view := New(1, 5, true, voter)

	done := make(chan error, 1)
	go func() {
		_, err := view.Upvote(context.Background())
		done <- err
	}()
	<-voter.started

	result, err := view.Upvote(context.Background())
	require.ErrorIs(t, err, ErrVotePending)
	assert.False(t, result.Success)

	_, err = view.Downvote(context.Background())
	require.ErrorIs(t, err, ErrVotePending)
	assert.Equal(t, int64(6), view.Count())

	close(voter.release)
	require.NoError(t, <-done)

	assert.Equal(t, int32(1), voter.upvotes.Load())
	assert.Equal(t, int32(0), voter.downvotes.Load())
	assert.Equal(t, int64(6), view.Count())
}

func TestView_ConcurrentClicksIssueOneCall(t *testing.T) {
	voter := newGatedVoter(succeeded("upvote"), nil)
	view := New(1, 0, false, voter)

	var wg sync.WaitGroup
	var pending atomic.Int32
	errs := make(chan error, 10)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := view.Upvote(context.Background())
			if errors.Is(err, ErrVotePending) {
				pending.Add(1)
			}
			errs <- err
		}()
	}

	<-voter.started
	assert.Eventually(t, func() bool { return pending.Load() == 9 }, time.Second, time.Millisecond)
	close(voter.release)
	wg.Wait()

	assert.Equal(t, int32(1), voter.upvotes.Load())
	assert.Equal(t, int64(1), view.Count())
}

func TestView_FailureReverts(t *testing.T) {
	cases := []struct {
		name      string
		baseline  int64
		direction domain.VoteDirection
		result    domain.VoteResult
		err       error
	}{
		{
			name:      "upvote_persistence_error",
			baseline:  5,
			direction: domain.VoteUp,
			result:    domain.VoteResult{Message: "Upvote failed!"},
			err:       domain.ErrPersistence,
		},
		{
			name:      "upvote_rejected_without_error",
			baseline:  5,
			direction: domain.VoteUp,
			result:    domain.VoteResult{Message: "You must be logged in to upvote a product"},
		},
		{
			name:      "downvote_transport_error",
			baseline:  3,
			direction: domain.VoteDown,
			err:       errors.New("connection reset"),
		},
		{
			name:      "downvote_at_zero_error",
			baseline:  0,
			direction: domain.VoteDown,
			result:    domain.VoteResult{Message: "Downvote failed!"},
			err:       domain.ErrPersistence,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			voter := newGatedVoter(tc.result, tc.err)
			close(voter.release)
			view := New(1, tc.baseline, true, voter)

			var (
				result domain.VoteResult
				err    error
			)
			if tc.direction == domain.VoteUp {
				result, err = view.Upvote(context.Background())
			} else {
				result, err = view.Downvote(context.Background())
			}

			require.Error(t, err)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			}
			assert.False(t, result.Success)
			assert.Equal(t, tc.baseline, view.Count())
			assert.Equal(t, PhaseIdle, view.Phase())
			assert.True(t, view.UpvoteEnabled())
		})
	}
}

func TestView_TimeoutReverts(t *testing.T) {
	voter := newGatedVoter(succeeded("upvote"), nil)
	view := New(1, 5, false, voter)
	view.Timeout = 10 * time.Millisecond

	_, err := view.Upvote(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int64(5), view.Count())
	assert.False(t, view.Pending())
}

func TestView_DownvoteDisabledWithoutVote(t *testing.T) {
	voter := newGatedVoter(succeeded("downvote"), nil)
	view := New(1, 0, false, voter)

	assert.False(t, view.DownvoteEnabled())

	result, err := view.Downvote(context.Background())
	require.ErrorIs(t, err, ErrDownvoteDisabled)
	assert.False(t, result.Success)
	assert.Equal(t, int32(0), voter.downvotes.Load())
	assert.Equal(t, int64(0), view.Count())
}

func TestView_DownvoteClampsAtZero(t *testing.T) {
	voter := newGatedVoter(succeeded("downvote"), nil)
	close(voter.release)
	view := New(1, 0, true, voter)

	_, err := view.Downvote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), view.Count())
}

func TestView_Refresh(t *testing.T) {
	voter := newGatedVoter(succeeded("upvote"), nil)
	close(voter.release)
	view := New(1, 5, false, voter)

	_, err := view.Upvote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), view.Count())

	view.Refresh(8, true)
	assert.Equal(t, int64(8), view.Count())
	assert.Equal(t, PhaseIdle, view.Phase())
	assert.True(t, view.HasVoted())
	assert.True(t, view.DownvoteEnabled())

	_, err = view.Upvote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), view.Count())
}

func TestView_RefreshIgnoredWhilePending(t *testing.T) {
	voter := newGatedVoter(domain.VoteResult{Message: "Upvote failed!"}, domain.ErrPersistence)
	view := New(1, 5, false, voter)

	done := make(chan error, 1)
	go func() {
		_, err := view.Upvote(context.Background())
		done <- err
	}()
	<-voter.started

	view.Refresh(100, true)
	assert.Equal(t, int64(6), view.Count())

	close(voter.release)
	require.Error(t, <-done)
	assert.Equal(t, int64(5), view.Count())
	assert.False(t, view.HasVoted())
}
