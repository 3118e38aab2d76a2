// Package voteview holds the client-side state of a product's vote controls:
// a baseline count from the last authoritative read, an overlay for the vote
// in flight, and the guards that stop a second vote being submitted while one
// is pending.
package voteview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jbeshir/product-showcase/internal/domain"
)

var (
	ErrVotePending      = errors.New("a vote is already pending")
	ErrDownvoteDisabled = errors.New("downvote is only enabled after voting")
)

// Voter issues votes against the authoritative store.
type Voter interface {
	Upvote(ctx context.Context, productID int64) (domain.VoteResult, error)
	Downvote(ctx context.Context, productID int64) (domain.VoteResult, error)
}

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhasePending Phase = "pending"
	PhaseSettled Phase = "settled"
)

// View is the display state of one product's vote controls. It is safe for concurrent use.
type View struct {
	// Timeout bounds each vote call when positive; a timed out vote is reverted like any other failure.
	Timeout time.Duration

	productID int64
	voter     Voter

	mu       sync.Mutex
	baseline int64
	delta    int64
	hasVoted bool
	phase    Phase
}

func New(productID, baseline int64, hasVoted bool, voter Voter) *View {
	return &View{
		productID: productID,
		voter:     voter,
		baseline:  max(0, baseline),
		hasVoted:  hasVoted,
		phase:     PhaseIdle,
	}
}

func (v *View) ProductID() int64 {
	return v.productID
}

// Count is the displayed vote count, including the overlay of any vote in flight.
func (v *View) Count() int64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return max(0, v.baseline+v.delta)
}

func (v *View) Phase() Phase {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.phase
}

func (v *View) Pending() bool {
	return v.Phase() == PhasePending
}

func (v *View) HasVoted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.hasVoted
}

func (v *View) UpvoteEnabled() bool {
	return !v.Pending()
}

func (v *View) DownvoteEnabled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.phase != PhasePending && v.hasVoted
}

// Refresh replaces the baseline with an authoritative read, dropping any settled prediction.
// It is ignored while a vote is pending; the in-flight vote resolves against the baseline it started from.
func (v *View) Refresh(count int64, hasVoted bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.phase == PhasePending {
		return
	}
	v.baseline = max(0, count)
	v.hasVoted = hasVoted
	v.phase = PhaseIdle
}

func (v *View) Upvote(ctx context.Context) (domain.VoteResult, error) {
	return v.vote(ctx, domain.VoteUp)
}

func (v *View) Downvote(ctx context.Context) (domain.VoteResult, error) {
	return v.vote(ctx, domain.VoteDown)
}

func (v *View) vote(ctx context.Context, direction domain.VoteDirection) (domain.VoteResult, error) {
	if err := v.begin(direction); err != nil {
		return domain.VoteResult{Message: err.Error()}, err
	}

	if v.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.Timeout)
		defer cancel()
	}

	var (
		result domain.VoteResult
		err    error
	)
	if direction == domain.VoteUp {
		result, err = v.voter.Upvote(ctx, v.productID)
	} else {
		result, err = v.voter.Downvote(ctx, v.productID)
	}
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	if err == nil && !result.Success {
		err = fmt.Errorf("%s rejected: %s", direction.Verb(), result.Message)
	}

	v.resolve(direction, err == nil)
	if err != nil {
		result.Success = false
		return result, fmt.Errorf("%s product %d: %w", direction.Verb(), v.productID, err)
	}
	return result, nil
}

func (v *View) begin(direction domain.VoteDirection) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.phase == PhasePending {
		return ErrVotePending
	}
	if direction == domain.VoteDown && !v.hasVoted {
		return ErrDownvoteDisabled
	}
	v.delta = int64(direction)
	v.phase = PhasePending
	return nil
}

func (v *View) resolve(direction domain.VoteDirection, succeeded bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.delta = 0
	if !succeeded {
		v.phase = PhaseIdle
		return
	}
	v.baseline = direction.ApplyTo(v.baseline)
	v.phase = PhaseSettled
}
