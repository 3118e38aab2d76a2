package datasources

import (
	"context"

	"github.com/jbeshir/product-showcase/internal/domain"
)

// ListingCache combines all listing cache operations.
type ListingCache interface {
	FeaturedListingCache
	ListingInvalidator
}

// ListingGeneration identifies the cache state a read observed.
// Every invalidation moves the cache to a new generation.
type ListingGeneration int64

// FeaturedListingCache stores the rendered featured product listing.
// GetFeaturedProducts returns false if nothing is cached, along with the generation
// to pass to SetFeaturedProducts after reading the store. SetFeaturedProducts drops
// the write if the cache has been invalidated since that generation was read.
type FeaturedListingCache interface {
	GetFeaturedProducts(ctx context.Context) ([]domain.Product, ListingGeneration, bool, error)
	SetFeaturedProducts(ctx context.Context, gen ListingGeneration, products []domain.Product) error
}

// ListingInvalidator marks every cached product listing as stale and
// advances the listing generation.
type ListingInvalidator interface {
	InvalidateListings(ctx context.Context) error
}

// NullListingCache is a null implementation of ListingCache; it never holds anything.
type NullListingCache struct{}

var _ ListingCache = NullListingCache{}

func (NullListingCache) GetFeaturedProducts(_ context.Context) ([]domain.Product, ListingGeneration, bool, error) {
	return nil, 0, false, nil
}

func (NullListingCache) SetFeaturedProducts(_ context.Context, _ ListingGeneration, _ []domain.Product) error {
	return nil
}

func (NullListingCache) InvalidateListings(_ context.Context) error {
	return nil
}
