package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/product-showcase/internal/command"
	"github.com/jbeshir/product-showcase/internal/domain"
)

// ProductsCommandList serves a product listing produced by a command that takes no input,
// such as the featured or recently launched listings.
type ProductsCommandList struct {
	Command     command.Command[command.Empty, []domain.Product]
	CacheMaxAge time.Duration
}

func (c ProductsCommandList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	products, err := c.Command.Execute(r.Context(), command.Empty{})
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
	})
}
