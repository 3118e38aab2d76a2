package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/product-showcase/internal/command"
	cmdmocks "github.com/jbeshir/product-showcase/internal/command/mocks"
	"github.com/jbeshir/product-showcase/internal/datasources/mocks"
	"github.com/jbeshir/product-showcase/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductsList_ServeHTTP(t *testing.T) {
	testTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	products := []domain.Product{
		{ID: 1, Slug: "first", VoteCount: 9, Status: domain.ProductStatusApproved, CreatedAt: testTime},
		{ID: 2, Slug: "second", VoteCount: 2, Status: domain.ProductStatusApproved, CreatedAt: testTime},
	}

	cases := []struct {
		name        string
		queryString string
		wantOptions domain.ProductListOptions
		products    []domain.Product
		listErr     error
		skipList    bool
		wantStatus  int
		wantData    []domain.Product
	}{
		{
			name:        "default_pagination",
			wantOptions: domain.ProductListOptions{Page: 1, PageSize: 50},
			products:    products,
			wantStatus:  http.StatusOK,
			wantData:    products,
		},
		{
			name:        "explicit_pagination",
			queryString: "?page=3&page_size=10",
			wantOptions: domain.ProductListOptions{Page: 3, PageSize: 10},
			products:    products[:1],
			wantStatus:  http.StatusOK,
			wantData:    products[:1],
		},
		{
			name:        "empty_listing",
			wantOptions: domain.ProductListOptions{Page: 1, PageSize: 50},
			wantStatus:  http.StatusOK,
			wantData:    []domain.Product{},
		},
		{
			name:        "invalid_page",
			queryString: "?page=0",
			skipList:    true,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "page_size_over_limit",
			queryString: "?page_size=500",
			skipList:    true,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "list_error",
			wantOptions: domain.ProductListOptions{Page: 1, PageSize: 50},
			listErr:     errors.New("database error"),
			wantStatus:  http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockApprovedProductLister(t)
			if !tc.skipList {
				lister.EXPECT().
					ListApprovedProducts(mock.Anything, tc.wantOptions).
					Return(tc.products, tc.listErr)
			}

			controller := ProductsList{
				Lister:      lister,
				CacheMaxAge: time.Minute,
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/products"+tc.queryString, nil)
			req = testContext()(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}
			assert.Equal(t, "max-age=60", rec.Header().Get("Cache-Control"))

			var resp ProductsListResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tc.wantData, resp.Data)
			assert.Equal(t, tc.wantOptions.Page, resp.Metadata.Page)
			assert.Equal(t, tc.wantOptions.PageSize, resp.Metadata.PageSize)
		})
	}
}

func TestProductsCommandList_ServeHTTP(t *testing.T) {
	featured := []domain.Product{{ID: 1, Slug: "first", VoteCount: 9}}

	cases := []struct {
		name       string
		products   []domain.Product
		commandErr error
		wantStatus int
		wantData   []domain.Product
	}{
		{
			name:       "listed",
			products:   featured,
			wantStatus: http.StatusOK,
			wantData:   featured,
		},
		{
			name:       "empty",
			wantStatus: http.StatusOK,
			wantData:   []domain.Product{},
		},
		{
			name:       "command_error",
			commandErr: domain.ErrPersistence,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			listCmd := cmdmocks.NewMockCommand[command.Empty, []domain.Product](t)
			listCmd.EXPECT().Execute(mock.Anything, command.Empty{}).Return(tc.products, tc.commandErr)

			controller := ProductsCommandList{Command: listCmd, CacheMaxAge: 30 * time.Second}

			req := httptest.NewRequest(http.MethodGet, "/v1/products/featured", nil)
			req = testContext()(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}
			assert.Equal(t, "max-age=30", rec.Header().Get("Cache-Control"))

			var resp ProductsListResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tc.wantData, resp.Data)
		})
	}
}
