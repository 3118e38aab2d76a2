package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jbeshir/product-showcase/internal/datasources"
	"github.com/jbeshir/product-showcase/internal/domain"
)

var _ datasources.ListingCache = (*ListingCache)(nil)

// ListingCache is a process-local listing cache with the same generation
// semantics as the Redis cache. Entries never expire.
type ListingCache struct {
	mu       sync.Mutex
	gen      datasources.ListingGeneration
	featured []domain.Product
	ok       bool
}

func NewListingCache() *ListingCache {
	return &ListingCache{}
}

func (c *ListingCache) GetFeaturedProducts(
	_ context.Context,
) ([]domain.Product, datasources.ListingGeneration, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ok {
		return nil, c.gen, false, nil
	}
	return slices.Clone(c.featured), c.gen, true, nil
}

func (c *ListingCache) SetFeaturedProducts(
	_ context.Context,
	gen datasources.ListingGeneration,
	products []domain.Product,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return nil
	}
	c.featured = slices.Clone(products)
	c.ok = true
	return nil
}

func (c *ListingCache) InvalidateListings(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.featured = nil
	c.ok = false
	return nil
}
