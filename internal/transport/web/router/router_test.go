package router

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/product-showcase/internal/command"
	"github.com/jbeshir/product-showcase/internal/datasources"
	"github.com/jbeshir/product-showcase/internal/datasources/memory"
	"github.com/jbeshir/product-showcase/internal/domain"
	"github.com/jbeshir/product-showcase/internal/transport/web/controller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAuthHeaderPrefix = "Bearer test|"

// testValidator accepts "Bearer test|<user>:<org>" and rejects "Bearer test|invalid".
func testValidator(r *http.Request) (*AuthResult, error) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, testAuthHeaderPrefix) {
		return nil, nil
	}
	token := authHeader[len(testAuthHeaderPrefix):]
	if token == "invalid" {
		return nil, fmt.Errorf("invalid test token")
	}
	userID, orgID, _ := strings.Cut(token, ":")
	return &AuthResult{UserID: userID, OrganizationID: orgID, Email: userID + "@example.com"}, nil
}

func setupTestRouter(t *testing.T) (http.Handler, *memory.Repository) {
	t.Helper()

	repo := memory.New()
	repo.Put(domain.Product{
		ID: 1, Name: "Launchpad", Slug: "launchpad", VoteCount: 5,
		Status: domain.ProductStatusApproved, CreatedAt: time.Now().Add(-time.Hour),
	})
	repo.Put(domain.Product{
		ID: 2, Name: "Zero", Slug: "zero", VoteCount: 0,
		Status: domain.ProductStatusApproved, CreatedAt: time.Now().Add(-30 * 24 * time.Hour),
	})

	cache := datasources.NullListingCache{}
	h, err := MakeRouter(
		repo,
		Commands{
			ApplyVote:     command.NewApplyVote(repo, cache, repo),
			SubmitProduct: command.NewSubmitProduct(repo),
			ListFeatured:  command.NewListFeaturedProducts(cache, repo),
			ListRecent:    command.NewListRecentProducts(repo),
		},
		"https://showcase.example.com", "Showcase", "feed@example.com",
		time.Minute,
		NewAuthMiddleware([]AuthValidator{testValidator}),
	)
	require.NoError(t, err)

	logged := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		h.ServeHTTP(w, r.WithContext(ctx))
	})
	return logged, repo
}

func do(t *testing.T, h http.Handler, method, path, auth string) (*httptest.ResponseRecorder, domain.VoteResult) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var result domain.VoteResult
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(rec.Body.Bytes(), &result)
	}
	return rec, result
}

func TestRouter_Votes(t *testing.T) {
	cases := []struct {
		name        string
		path        string
		auth        string
		wantStatus  int
		wantSuccess bool
		wantMessage string
		wantCount   int64
	}{
		{
			name:        "upvote",
			path:        "/v1/products/1/upvote",
			auth:        "Bearer test|alice:acme",
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantMessage: "Product upvoted successfully!",
			wantCount:   6,
		},
		{
			name:        "downvote",
			path:        "/v1/products/1/downvote",
			auth:        "Bearer test|alice:acme",
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantMessage: "Product downvoted successfully!",
			wantCount:   4,
		},
		{
			name:        "unauthenticated",
			path:        "/v1/products/1/upvote",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "You must be logged in to upvote a product",
			wantCount:   5,
		},
		{
			name:        "invalid_token",
			path:        "/v1/products/1/upvote",
			auth:        "Bearer test|invalid",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid test token",
			wantCount:   5,
		},
		{
			name:        "no_organization",
			path:        "/v1/products/1/downvote",
			auth:        "Bearer test|alice",
			wantStatus:  http.StatusForbidden,
			wantMessage: "You must be a member of an organization to downvote a product",
			wantCount:   5,
		},
		{
			name:        "not_found",
			path:        "/v1/products/99/upvote",
			auth:        "Bearer test|alice:acme",
			wantStatus:  http.StatusNotFound,
			wantMessage: "Product not found",
			wantCount:   5,
		},
		{
			name:        "bad_id",
			path:        "/v1/products/abc/upvote",
			auth:        "Bearer test|alice:acme",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid product id",
			wantCount:   5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, repo := setupTestRouter(t)

			rec, result := do(t, h, http.MethodPost, tc.path, tc.auth)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantSuccess, result.Success)
			assert.Equal(t, tc.wantMessage, result.Message)

			count, ok := repo.VoteCount(1)
			require.True(t, ok)
			assert.Equal(t, tc.wantCount, count)
		})
	}
}

func TestRouter_ConcurrentUpvotes(t *testing.T) {
	h, repo := setupTestRouter(t)

	var wg sync.WaitGroup
	for _, user := range []string{"alice", "bob"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, _ := do(t, h, http.MethodPost, "/v1/products/1/upvote", "Bearer test|"+user+":acme")
			assert.Equal(t, http.StatusOK, rec.Code)
		}()
	}
	wg.Wait()

	count, _ := repo.VoteCount(1)
	assert.Equal(t, int64(7), count)
}

func TestRouter_ConcurrentDownvotesAtZero(t *testing.T) {
	h, repo := setupTestRouter(t)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, result := do(t, h, http.MethodPost, "/v1/products/2/downvote",
				fmt.Sprintf("Bearer test|user%d:acme", i))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, result.Success)
		}()
	}
	wg.Wait()

	count, _ := repo.VoteCount(2)
	assert.Equal(t, int64(0), count)
}

func TestRouter_HasVotedFollowsLedger(t *testing.T) {
	h, _ := setupTestRouter(t)

	hasVoted := func(auth string) *bool {
		req := httptest.NewRequest(http.MethodGet, "/v1/products/launchpad", nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var product domain.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
		return product.HasVoted
	}

	assert.Nil(t, hasVoted(""))
	require.NotNil(t, hasVoted("Bearer test|alice:acme"))
	assert.False(t, *hasVoted("Bearer test|alice:acme"))

	rec, _ := do(t, h, http.MethodPost, "/v1/products/1/upvote", "Bearer test|alice:acme")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *hasVoted("Bearer test|alice:acme"))
	assert.False(t, *hasVoted("Bearer test|bob:acme"))

	rec, _ = do(t, h, http.MethodPost, "/v1/products/1/downvote", "Bearer test|alice:acme")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, *hasVoted("Bearer test|alice:acme"))
}

func TestRouter_Listings(t *testing.T) {
	h, _ := setupTestRouter(t)

	list := func(path string) []string {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp controller.ProductsListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		var slugs []string
		for _, p := range resp.Data {
			slugs = append(slugs, p.Slug)
		}
		return slugs
	}

	assert.Equal(t, []string{"launchpad", "zero"}, list("/v1/products"))
	assert.Equal(t, []string{"launchpad", "zero"}, list("/v1/products/featured"))
	assert.Equal(t, []string{"launchpad"}, list("/v1/products/recent"))
	assert.Equal(t, []string{"zero"}, list("/v1/products?page=2&page_size=1"))
}

func TestRouter_SubmitProduct(t *testing.T) {
	h, repo := setupTestRouter(t)

	body := `{"name":"Rocket","slug":"rocket","tagline":"Go fast","website_url":"https://rocket.example.com","tags":"Speed, AI"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test|alice:acme")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var state domain.FormState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.True(t, state.Success)

	product, err := repo.FetchProductBySlug(req.Context(), "rocket")
	require.NoError(t, err)
	assert.Equal(t, domain.ProductStatusPending, product.Status)
	assert.Equal(t, int64(0), product.VoteCount)
	assert.Equal(t, []string{"speed", "ai"}, product.Tags)
	assert.Equal(t, "alice@example.com", product.SubmittedBy)

	req = httptest.NewRequest(http.MethodPost, "/v1/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/plain")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestRouter_RequestID(t *testing.T) {
	h, _ := setupTestRouter(t)

	rec, _ := do(t, h, http.MethodGet, "/v1/products", "")
	_, err := uuid.Parse(rec.Header().Get(requestIDHeader))
	require.NoError(t, err)

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	req.Header.Set(requestIDHeader, given)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, given, rec.Header().Get(requestIDHeader))
}

func TestRouter_CORSPreflight(t *testing.T) {
	h, _ := setupTestRouter(t)

	rec, _ := do(t, h, http.MethodOptions, "/v1/products/1/upvote", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestRouter_RSS(t *testing.T) {
	h, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/rss", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Launchpad</title>")
	assert.NotContains(t, rec.Body.String(), "<title>Zero</title>")
}
