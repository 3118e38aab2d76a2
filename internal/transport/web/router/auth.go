package router

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/jbeshir/product-showcase/internal/domain"
)

const auth0AuthHeaderPrefix = "Bearer auth0|"

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID         string
	OrganizationID string
	Email          string
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
// Requests no validator applies to pass through anonymously; the commands decide whether that is allowed.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					writeJSON(w, r, http.StatusUnauthorized, domain.VoteResult{Message: err.Error()})
					return
				}

				ctx := domain.ContextWithPrincipal(r.Context(), domain.Principal{
					UserID:         result.UserID,
					OrganizationID: result.OrganizationID,
					Email:          result.Email,
				})
				logger := domain.LoggerFromContext(ctx).With("user_id", result.UserID)
				ctx = domain.ContextWithLogger(ctx, logger)

				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// auth0Claims are the custom claims our Auth0 tenant adds to access tokens.
type auth0Claims struct {
	OrganizationID string `json:"org_id"`
	Email          string `json:"email"`
}

func (c *auth0Claims) Validate(_ context.Context) error {
	return nil
}

// NewAuth0Validator creates a validator for Auth0 JWT tokens.
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &auth0Claims{}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, auth0AuthHeaderPrefix) {
			return nil, nil
		}

		token, err := jwtValidator.ValidateToken(r.Context(), authHeader[len(auth0AuthHeaderPrefix):])
		if err != nil {
			return nil, fmt.Errorf("invalid JWT token")
		}

		claims := token.(*validator.ValidatedClaims)
		result := &AuthResult{UserID: claims.RegisteredClaims.Subject}
		if custom, ok := claims.CustomClaims.(*auth0Claims); ok {
			result.OrganizationID = custom.OrganizationID
			result.Email = custom.Email
		}
		return result, nil
	}, nil
}
