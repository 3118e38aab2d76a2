package router

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jbeshir/product-showcase/internal/domain"
)

// requireJSONMiddleware rejects request bodies that are not declared as JSON.
func requireJSONMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")
		if r.ContentLength != 0 && !strings.HasPrefix(contentType, "application/json") {
			logger := domain.LoggerFromContext(r.Context())
			logger.ErrorContext(r.Context(), "request body is not JSON", "content_type", contentType)
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger := domain.LoggerFromContext(r.Context())
		logger.ErrorContext(r.Context(), "unable to write response body", "error", err)
	}
}
