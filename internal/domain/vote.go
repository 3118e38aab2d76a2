package domain

import "fmt"

// VoteDirection is the delta a single vote applies to a product's vote count.
type VoteDirection int

const (
	VoteUp   VoteDirection = 1
	VoteDown VoteDirection = -1
)

func (d VoteDirection) Valid() bool {
	return d == VoteUp || d == VoteDown
}

// Verb is the user-facing name of the vote, as used in result messages.
func (d VoteDirection) Verb() string {
	switch d {
	case VoteUp:
		return "upvote"
	case VoteDown:
		return "downvote"
	default:
		return fmt.Sprintf("vote(%d)", int(d))
	}
}

// ApplyTo returns the count after this vote, clamped at zero.
func (d VoteDirection) ApplyTo(count int64) int64 {
	return max(0, count+int64(d))
}

// VoteResult is what a vote action reports back to its caller.
// It carries no vote count; callers re-read the product for that.
type VoteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// VoteState is the progress of a single vote action.
type VoteState string

const (
	VoteStateIdle           VoteState = "idle"
	VoteStateAuthenticating VoteState = "authenticating"
	VoteStateAuthorized     VoteState = "authorized"
	VoteStateMutating       VoteState = "mutating"
	VoteStateSucceeded      VoteState = "succeeded"
	VoteStateFailed         VoteState = "failed"
)
