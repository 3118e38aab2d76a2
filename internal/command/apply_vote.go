package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jbeshir/product-showcase/internal/datasources"
	"github.com/jbeshir/product-showcase/internal/domain"
)

// ApplyVoteRequest is the request for the ApplyVote command.
// The acting principal is taken from the context, not the request.
type ApplyVoteRequest struct {
	ProductID int64
	Direction domain.VoteDirection
}

// ApplyVote applies a single up or down vote to a product's counter.
//
// The counter update is one clamped statement in the store, so concurrent votes
// never lose updates and never take the count below zero. The command is not
// idempotent: a retried call applies its delta again.
//
// Every return carries a populated VoteResult; on failure the error is also
// returned so transports can classify it with errors.Is.
type ApplyVote struct {
	VoteApplier        datasources.ProductVoteApplier
	ListingInvalidator datasources.ListingInvalidator
	VoteRecorder       datasources.ProductVoteRecorder
}

// NewApplyVote creates a properly initialized ApplyVote command.
func NewApplyVote(
	voteApplier datasources.ProductVoteApplier,
	listingInvalidator datasources.ListingInvalidator,
	voteRecorder datasources.ProductVoteRecorder,
) *ApplyVote {
	return &ApplyVote{
		VoteApplier:        voteApplier,
		ListingInvalidator: listingInvalidator,
		VoteRecorder:       voteRecorder,
	}
}

func (c *ApplyVote) Upvote(ctx context.Context, productID int64) (domain.VoteResult, error) {
	return c.Execute(ctx, ApplyVoteRequest{ProductID: productID, Direction: domain.VoteUp})
}

func (c *ApplyVote) Downvote(ctx context.Context, productID int64) (domain.VoteResult, error) {
	return c.Execute(ctx, ApplyVoteRequest{ProductID: productID, Direction: domain.VoteDown})
}

// Execute runs one vote through idle, authenticating, authorized and mutating to succeeded or failed.
func (c *ApplyVote) Execute(ctx context.Context, req ApplyVoteRequest) (domain.VoteResult, error) {
	logger := domain.LoggerFromContext(ctx).With(
		"product_id", req.ProductID,
		"direction", int(req.Direction),
	)
	verb := req.Direction.Verb()

	fail := func(err error, message string) (domain.VoteResult, error) {
		logVoteState(ctx, logger, domain.VoteStateFailed, "error", err)
		return domain.VoteResult{Success: false, Message: message}, err
	}

	logVoteState(ctx, logger, domain.VoteStateIdle)
	if !req.Direction.Valid() {
		return fail(domain.ErrInvalidVoteDirection, "Invalid vote direction")
	}

	logVoteState(ctx, logger, domain.VoteStateAuthenticating)
	principal := domain.PrincipalFromContext(ctx)
	if principal.UserID == "" {
		return fail(domain.ErrUnauthenticated, fmt.Sprintf("You must be logged in to %s a product", verb))
	}
	if principal.OrganizationID == "" {
		return fail(domain.ErrUnauthorized,
			fmt.Sprintf("You must be a member of an organization to %s a product", verb))
	}
	logger = logger.With("user_id", principal.UserID)
	logVoteState(ctx, logger, domain.VoteStateAuthorized)

	logVoteState(ctx, logger, domain.VoteStateMutating)
	if err := c.VoteApplier.ApplyProductVote(ctx, req.ProductID, req.Direction); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail(err, "Product not found")
		}
		return fail(
			fmt.Errorf("%w: applying vote: %w", domain.ErrPersistence, err),
			strings.ToUpper(verb[:1])+verb[1:]+" failed!",
		)
	}

	// The counter has changed; the steps below are best-effort.
	if err := c.ListingInvalidator.InvalidateListings(ctx); err != nil {
		logger.WarnContext(ctx, "failed to invalidate cached listings after vote", "error", err)
	}
	c.updateLedger(ctx, logger, principal.UserID, req)

	logVoteState(ctx, logger, domain.VoteStateSucceeded)
	return domain.VoteResult{
		Success: true,
		Message: fmt.Sprintf("Product %sd successfully!", verb),
	}, nil
}

// updateLedger keeps the one-entry-per-user-per-product vote ledger in line with the vote.
// It never gates or undoes the counter update.
func (c *ApplyVote) updateLedger(ctx context.Context, logger *slog.Logger, userID string, req ApplyVoteRequest) {
	var err error
	if req.Direction == domain.VoteUp {
		err = c.VoteRecorder.RecordProductVote(ctx, userID, req.ProductID)
	} else {
		err = c.VoteRecorder.RemoveProductVote(ctx, userID, req.ProductID)
	}
	if err != nil {
		logger.WarnContext(ctx, "failed to update product vote ledger", "error", err)
	}
}

func logVoteState(ctx context.Context, logger *slog.Logger, state domain.VoteState, args ...any) {
	logger.DebugContext(ctx, "vote state", append([]any{"state", state}, args...)...)
}
