package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/product-showcase/internal/datasources"
	"github.com/jbeshir/product-showcase/internal/domain"
)

const erDupEntry = 1062

var _ datasources.ProductRepository = (*Repository)(nil)

var productColumns = []string{
	"p.id",
	"p.name",
	"p.slug",
	"p.tagline",
	"p.description",
	"p.website_url",
	"p.tags",
	"p.vote_count",
	"p.status",
	"p.submitted_by",
	"p.user_id",
	"p.organization_id",
	"p.created_at",
	"p.approved_at",
}

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ApplyProductVote clamps and applies the delta in a single UPDATE statement.
func (r *Repository) ApplyProductVote(ctx context.Context, productID int64, delta domain.VoteDirection) error {
	ub := sqlbuilder.Update("products")
	ub.Set("vote_count = GREATEST(0, vote_count + " + ub.Var(int(delta)) + ")")
	ub.Where(ub.Equal("id", productID))

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating product vote count: %w", err)
	}

	matched, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if matched == 0 {
		return fmt.Errorf("product [%d]: %w", productID, domain.ErrNotFound)
	}

	return nil
}

func (r *Repository) RecordProductVote(ctx context.Context, userID string, productID int64) error {
	ib := sqlbuilder.InsertIgnoreInto("product_votes")
	ib.Cols("user_id", "product_id")
	ib.Values(userID, productID)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("recording product vote: %w", err)
	}
	return nil
}

func (r *Repository) RemoveProductVote(ctx context.Context, userID string, productID int64) error {
	db := sqlbuilder.DeleteFrom("product_votes")
	db.Where(
		db.Equal("user_id", userID),
		db.Equal("product_id", productID),
	)

	query, args := db.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("removing product vote: %w", err)
	}
	return nil
}

func (r *Repository) CreateProduct(ctx context.Context, product domain.NewProduct) (int64, error) {
	tags, err := json.Marshal(product.Tags)
	if err != nil {
		return 0, fmt.Errorf("encoding tags: %w", err)
	}

	var description sql.NullString
	if product.Description != "" {
		description = sql.NullString{String: product.Description, Valid: true}
	}

	ib := sqlbuilder.InsertInto("products")
	ib.Cols(
		"name", "slug", "tagline", "description", "website_url", "tags",
		"vote_count", "status", "submitted_by", "user_id", "organization_id",
	)
	ib.Values(
		product.Name, product.Slug, product.Tagline, description, product.WebsiteURL, string(tags),
		0, string(domain.ProductStatusPending), product.SubmittedBy, product.UserID, product.OrganizationID,
	)

	query, args := ib.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		var mysqlErr *mysqldriver.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == erDupEntry {
			validationErr := &domain.ValidationError{}
			validationErr.Add("slug", "A product with this slug already exists")
			return 0, validationErr
		}
		return 0, fmt.Errorf("inserting product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted product ID: %w", err)
	}
	return id, nil
}

func (r *Repository) FetchProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	userID := domain.UserIDFromContext(ctx)

	sb := sqlbuilder.Select(productColumns...)
	sb.From("products p")
	if userID != "" {
		sb.SelectMore("pv.user_id IS NOT NULL")
		sb.JoinWithOption(sqlbuilder.LeftJoin, "product_votes pv",
			"pv.product_id = p.id",
			"pv.user_id = "+sb.Var(userID),
		)
	}
	sb.Where(sb.Equal("p.slug", slug))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.Product{}, fmt.Errorf("running product query: %w", err)
	}

	products, err := scanProducts(rows, userID != "")
	if err != nil {
		return domain.Product{}, err
	}
	if len(products) == 0 {
		return domain.Product{}, fmt.Errorf("product [%s]: %w", slug, domain.ErrNotFound)
	}

	return products[0], nil
}

func (r *Repository) ListApprovedProducts(
	ctx context.Context,
	options domain.ProductListOptions,
) ([]domain.Product, error) {
	sb := sqlbuilder.Select(productColumns...)
	sb.From("products p")
	sb.Where(sb.Equal("p.status", string(domain.ProductStatusApproved)))
	sb.OrderBy("p.vote_count DESC", "p.id ASC")

	if options.PageSize > 0 {
		limit, offset := paginationToLimitOffset(options.Page, options.PageSize)
		sb.Limit(int(limit))
		sb.Offset(int(offset))
	}

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running approved products query: %w", err)
	}

	return scanProducts(rows, false)
}

func (r *Repository) ListRecentProducts(ctx context.Context, since time.Time) ([]domain.Product, error) {
	sb := sqlbuilder.Select(productColumns...)
	sb.From("products p")
	sb.Where(
		sb.Equal("p.status", string(domain.ProductStatusApproved)),
		sb.GreaterEqualThan("p.created_at", since),
	)
	sb.OrderBy("p.vote_count DESC", "p.id ASC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running recent products query: %w", err)
	}

	return scanProducts(rows, false)
}

func scanProducts(rows *sql.Rows, withHasVoted bool) ([]domain.Product, error) {
	defer func() { _ = rows.Close() }()

	products := []domain.Product{}
	for rows.Next() {
		var (
			p           domain.Product
			description sql.NullString
			tags        []byte
			status      string
			approvedAt  sql.NullTime
			hasVoted    bool
		)

		dest := []any{
			&p.ID,
			&p.Name,
			&p.Slug,
			&p.Tagline,
			&description,
			&p.WebsiteURL,
			&tags,
			&p.VoteCount,
			&status,
			&p.SubmittedBy,
			&p.UserID,
			&p.OrganizationID,
			&p.CreatedAt,
			&approvedAt,
		}
		if withHasVoted {
			dest = append(dest, &hasVoted)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning products: %w", err)
		}

		p.Description = description.String
		p.Status = domain.ProductStatus(status)
		if approvedAt.Valid {
			p.ApprovedAt = &approvedAt.Time
		}
		if err := json.Unmarshal(tags, &p.Tags); err != nil {
			return nil, fmt.Errorf("decoding tags for product [%d]: %w", p.ID, err)
		}
		if withHasVoted {
			p.HasVoted = &hasVoted
		}

		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return products, nil
}

// paginationToLimitOffset converts page/pageSize to limit/offset with bounds checking.
// Clamps values to int32 range to prevent overflow.
func paginationToLimitOffset(page, pageSize int) (limit, offset int32) {
	if pageSize > math.MaxInt32 {
		pageSize = math.MaxInt32
	}
	limit = int32(pageSize) //nolint:gosec // bounds checked above

	off := (max(page, 1) - 1) * pageSize
	if off > math.MaxInt32 {
		off = math.MaxInt32
	}
	offset = int32(off) //nolint:gosec // bounds checked above

	return limit, offset
}
