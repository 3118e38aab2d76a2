package controller

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/jbeshir/product-showcase/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 50
	maxPageSize     = 200
)

func productListOptionsFromQuery(q url.Values) (domain.ProductListOptions, error) {
	options := domain.ProductListOptions{
		Page:     defaultPage,
		PageSize: defaultPageSize,
	}

	if q.Has("page") {
		p, err := strconv.ParseInt(q.Get("page"), 10, 32)
		if err != nil {
			return domain.ProductListOptions{}, fmt.Errorf("unable to parse page from query: %w", err)
		}
		if p < 1 {
			return domain.ProductListOptions{}, fmt.Errorf("invalid page value [%d]", p)
		}
		options.Page = int(p)
	}

	if q.Has("page_size") {
		ps, err := strconv.ParseInt(q.Get("page_size"), 10, 32)
		if err != nil {
			return domain.ProductListOptions{}, fmt.Errorf("unable to parse page size from query: %w", err)
		}
		if ps > maxPageSize {
			return domain.ProductListOptions{}, fmt.Errorf("page size [%d] exceeds limit [%d]", ps, maxPageSize)
		}
		if ps < 1 {
			return domain.ProductListOptions{}, fmt.Errorf("invalid page size value [%d]", ps)
		}
		options.PageSize = int(ps)
	}

	return options, nil
}
