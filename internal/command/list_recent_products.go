package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/product-showcase/internal/datasources"
	"github.com/jbeshir/product-showcase/internal/domain"
)

// ListRecentProducts returns approved products launched within domain.RecentlyLaunchedWindow.
type ListRecentProducts struct {
	Lister datasources.RecentProductLister
	Now    func() time.Time
}

func NewListRecentProducts(lister datasources.RecentProductLister) *ListRecentProducts {
	return &ListRecentProducts{
		Lister: lister,
		Now:    time.Now,
	}
}

func (c *ListRecentProducts) Execute(ctx context.Context, _ Empty) ([]domain.Product, error) {
	since := c.Now().Add(-domain.RecentlyLaunchedWindow)
	products, err := c.Lister.ListRecentProducts(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("%w: listing recent products: %w", domain.ErrPersistence, err)
	}
	return products, nil
}
