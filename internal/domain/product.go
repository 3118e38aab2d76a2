package domain

import (
	"time"
)

type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusApproved ProductStatus = "approved"
	ProductStatusRejected ProductStatus = "rejected"
)

type Product struct {
	ID             int64         `json:"id"`
	Name           string        `json:"name"`
	Slug           string        `json:"slug"`
	Tagline        string        `json:"tagline"`
	Description    string        `json:"description,omitempty"`
	WebsiteURL     string        `json:"website_url"`
	Tags           []string      `json:"tags"`
	VoteCount      int64         `json:"vote_count"`
	Status         ProductStatus `json:"status"`
	SubmittedBy    string        `json:"submitted_by"`
	UserID         string        `json:"-"`
	OrganizationID string        `json:"-"`
	CreatedAt      time.Time     `json:"created_at"`
	ApprovedAt     *time.Time    `json:"approved_at,omitempty"`

	// HasVoted is only set when the product was read on behalf of an authenticated user.
	HasVoted *bool `json:"has_voted,omitempty"`
}

// NewProduct is a validated product submission, ready to be stored.
type NewProduct struct {
	Name           string
	Slug           string
	Tagline        string
	Description    string
	WebsiteURL     string
	Tags           []string
	SubmittedBy    string
	UserID         string
	OrganizationID string
}

type ProductListOptions struct {
	Page, PageSize int
}

// RecentlyLaunchedWindow is how far back a product's creation may be for it to count as recently launched.
const RecentlyLaunchedWindow = 7 * 24 * time.Hour

// FormState is the outcome of a form submission, with per-field messages on validation failure.
type FormState struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}
