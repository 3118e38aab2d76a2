package datasources

import (
	"context"
	"time"

	"github.com/jbeshir/product-showcase/internal/domain"
)

// ProductRepository combines all product storage operations.
type ProductRepository interface {
	ProductVoteApplier
	ProductVoteRecorder
	ProductCreator
	ProductBySlugFetcher
	ApprovedProductLister
	RecentProductLister
}

// ProductVoteApplier applies a single clamped vote delta to a product's counter.
// Implementations must compute max(0, vote_count + delta) inside one atomic store operation,
// never as a read followed by a write.
// Returns domain.ErrNotFound if no product has the given ID.
type ProductVoteApplier interface {
	ApplyProductVote(ctx context.Context, productID int64, delta domain.VoteDirection) error
}

// ProductVoteRecorder maintains the per-user vote ledger, one entry per user per product.
type ProductVoteRecorder interface {
	RecordProductVote(ctx context.Context, userID string, productID int64) error
	RemoveProductVote(ctx context.Context, userID string, productID int64) error
}

type ProductCreator interface {
	CreateProduct(ctx context.Context, product domain.NewProduct) (int64, error)
}

// ProductBySlugFetcher fetches a single product.
// HasVoted is populated when the context carries an authenticated user.
type ProductBySlugFetcher interface {
	FetchProductBySlug(ctx context.Context, slug string) (domain.Product, error)
}

// ApprovedProductLister lists approved products by vote count, highest first.
type ApprovedProductLister interface {
	ListApprovedProducts(ctx context.Context, options domain.ProductListOptions) ([]domain.Product, error)
}

// RecentProductLister lists approved products created at or after since, by vote count.
type RecentProductLister interface {
	ListRecentProducts(ctx context.Context, since time.Time) ([]domain.Product, error)
}
