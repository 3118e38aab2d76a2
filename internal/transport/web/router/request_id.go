package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/jbeshir/product-showcase/internal/domain"
)

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware tags the request's logger with a request ID, reusing the caller's if it sent a valid one.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get(requestIDHeader))
		if err != nil {
			id = uuid.New()
		}
		w.Header().Set(requestIDHeader, id.String())

		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx).With("request_id", id.String())
		next.ServeHTTP(w, r.WithContext(domain.ContextWithLogger(ctx, logger)))
	})
}
