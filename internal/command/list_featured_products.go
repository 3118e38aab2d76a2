package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/product-showcase/internal/datasources"
	"github.com/jbeshir/product-showcase/internal/domain"
)

// ListFeaturedProducts returns every approved product by vote count, served from
// the listing cache when it holds a copy. Cache failures fall through to the store.
// A listing is only written back under the generation observed before the store
// read, so a vote that invalidates the cache mid-read is never overwritten.
type ListFeaturedProducts struct {
	Cache  datasources.FeaturedListingCache
	Lister datasources.ApprovedProductLister
}

func NewListFeaturedProducts(
	cache datasources.FeaturedListingCache,
	lister datasources.ApprovedProductLister,
) *ListFeaturedProducts {
	return &ListFeaturedProducts{
		Cache:  cache,
		Lister: lister,
	}
}

func (c *ListFeaturedProducts) Execute(ctx context.Context, _ Empty) ([]domain.Product, error) {
	logger := domain.LoggerFromContext(ctx)

	cached, gen, ok, err := c.Cache.GetFeaturedProducts(ctx)
	cacheable := err == nil
	if err != nil {
		logger.WarnContext(ctx, "failed to read featured products from cache", "error", err)
	} else if ok {
		return cached, nil
	}

	products, err := c.Lister.ListApprovedProducts(ctx, domain.ProductListOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: listing featured products: %w", domain.ErrPersistence, err)
	}

	// Without a generation from the read there is nothing safe to write under.
	if cacheable {
		if err := c.Cache.SetFeaturedProducts(ctx, gen, products); err != nil {
			logger.WarnContext(ctx, "failed to cache featured products", "error", err)
		}
	}

	return products, nil
}
