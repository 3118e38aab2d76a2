package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/product-showcase/internal/datasources"
	"github.com/jbeshir/product-showcase/internal/domain"
)

type ProductsList struct {
	Lister      datasources.ApprovedProductLister
	CacheMaxAge time.Duration
}

func (c ProductsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	options, err := productListOptionsFromQuery(r.URL.Query())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse product list options in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	products, err := c.Lister.ListApprovedProducts(r.Context(), options)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list products", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	writeJSON(w, r, http.StatusOK, ProductsListResponse{
		Data: nonNilProducts(products),
		Metadata: ProductsListMetadata{
			Page:     options.Page,
			PageSize: options.PageSize,
		},
	})
}
