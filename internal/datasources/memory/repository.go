// Package memory provides a process-local ProductRepository for local development and tests.
// It follows the same contract as the MySQL repository: vote deltas are clamped and applied
// as one step under the repository lock, never as a separate read and write by the caller.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jbeshir/product-showcase/internal/datasources"
	"github.com/jbeshir/product-showcase/internal/domain"
)

var _ datasources.ProductRepository = (*Repository)(nil)

type voteKey struct {
	userID    string
	productID int64
}

type Repository struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]domain.Product
	votes    map[voteKey]struct{}
	now      func() time.Time
}

func New() *Repository {
	return &Repository{
		nextID:   1,
		products: make(map[int64]domain.Product),
		votes:    make(map[voteKey]struct{}),
		now:      time.Now,
	}
}

// Put stores a product as-is, replacing any product with the same ID.
func (r *Repository) Put(product domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.Tags = slices.Clone(product.Tags)
	product.HasVoted = nil
	r.products[product.ID] = product
	if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
}

// VoteCount returns the stored counter for a product.
func (r *Repository) VoteCount(productID int64) (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	return p.VoteCount, ok
}

func (r *Repository) ApplyProductVote(_ context.Context, productID int64, delta domain.VoteDirection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return fmt.Errorf("product [%d]: %w", productID, domain.ErrNotFound)
	}

	p.VoteCount = delta.ApplyTo(p.VoteCount)
	r.products[productID] = p
	return nil
}

func (r *Repository) RecordProductVote(_ context.Context, userID string, productID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[productID]; !ok {
		return fmt.Errorf("product [%d]: %w", productID, domain.ErrNotFound)
	}
	r.votes[voteKey{userID: userID, productID: productID}] = struct{}{}
	return nil
}

func (r *Repository) RemoveProductVote(_ context.Context, userID string, productID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.votes, voteKey{userID: userID, productID: productID})
	return nil
}

func (r *Repository) CreateProduct(_ context.Context, product domain.NewProduct) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.products {
		if existing.Slug == product.Slug {
			validationErr := &domain.ValidationError{}
			validationErr.Add("slug", "A product with this slug already exists")
			return 0, validationErr
		}
	}

	id := r.nextID
	r.nextID++
	r.products[id] = domain.Product{
		ID:             id,
		Name:           product.Name,
		Slug:           product.Slug,
		Tagline:        product.Tagline,
		Description:    product.Description,
		WebsiteURL:     product.WebsiteURL,
		Tags:           slices.Clone(product.Tags),
		Status:         domain.ProductStatusPending,
		SubmittedBy:    product.SubmittedBy,
		UserID:         product.UserID,
		OrganizationID: product.OrganizationID,
		CreatedAt:      r.now(),
	}
	return id, nil
}

func (r *Repository) FetchProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	userID := domain.UserIDFromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.Slug != slug {
			continue
		}
		p.Tags = slices.Clone(p.Tags)
		if userID != "" {
			_, voted := r.votes[voteKey{userID: userID, productID: p.ID}]
			p.HasVoted = &voted
		}
		return p, nil
	}

	return domain.Product{}, fmt.Errorf("product [%s]: %w", slug, domain.ErrNotFound)
}

func (r *Repository) ListApprovedProducts(
	_ context.Context,
	options domain.ProductListOptions,
) ([]domain.Product, error) {
	products := r.approved(func(domain.Product) bool { return true })

	if options.PageSize > 0 {
		start := min((max(options.Page, 1)-1)*options.PageSize, len(products))
		end := min(start+options.PageSize, len(products))
		products = products[start:end]
	}
	return products, nil
}

func (r *Repository) ListRecentProducts(_ context.Context, since time.Time) ([]domain.Product, error) {
	return r.approved(func(p domain.Product) bool { return !p.CreatedAt.Before(since) }), nil
}

// approved returns matching approved products, highest vote count first.
func (r *Repository) approved(match func(domain.Product) bool) []domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := []domain.Product{}
	for _, p := range r.products {
		if p.Status != domain.ProductStatusApproved || !match(p) {
			continue
		}
		p.Tags = slices.Clone(p.Tags)
		products = append(products, p)
	}

	slices.SortFunc(products, func(a, b domain.Product) int {
		if c := cmp.Compare(b.VoteCount, a.VoteCount); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return products
}
