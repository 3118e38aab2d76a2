package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/product-showcase/internal/domain"
)

// ProductsListResponse is the body of every product listing endpoint.
type ProductsListResponse struct {
	Data     []domain.Product     `json:"data"`
	Metadata ProductsListMetadata `json:"metadata"`
}

type ProductsListMetadata struct {
	Page     int `json:"page,omitempty"`
	PageSize int `json:"page_size,omitempty"`
}

// statusForError maps the domain's error sentinels onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidVoteDirection):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// setPublicCacheControl allows caching only for anonymous requests, whose responses carry no per-user data.
func setPublicCacheControl(w http.ResponseWriter, r *http.Request, maxAge time.Duration) {
	if domain.UserIDFromContext(r.Context()) == "" {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(maxAge.Seconds())))
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response body", "error", err)
	}
}

func nonNilProducts(products []domain.Product) []domain.Product {
	if products == nil {
		return []domain.Product{}
	}
	return products
}
