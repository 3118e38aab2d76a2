package controller

import (
	"log/slog"
	"net/http"

	"github.com/jbeshir/product-showcase/internal/domain"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func testContextWithPrincipal(principal domain.Principal) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithPrincipal(ctx, principal)
		return r.WithContext(ctx)
	}
}
