// Package client provides an HTTP client for the Product Showcase API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/product-showcase/internal/domain"
)

// Listing selects which product listing ListProducts reads.
type Listing string

const (
	ListingAll      Listing = "all"
	ListingFeatured Listing = "featured"
	ListingRecent   Listing = "recent"
)

// ProductsResponse represents the response for product listings.
type ProductsResponse struct {
	Data     []domain.Product `json:"data"`
	Metadata struct {
		Page     int `json:"page,omitempty"`
		PageSize int `json:"page_size,omitempty"`
	} `json:"metadata"`
}

// APIError is a non-2xx response from the API.
// It unwraps to the domain error matching its status code, where there is one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrUnauthenticated
	case http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest:
		return domain.ErrValidation
	default:
		if e.StatusCode >= 500 {
			return domain.ErrPersistence
		}
		return nil
	}
}

// Client is an HTTP client for the Product Showcase API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a new API client. apiToken is sent as a bearer token, e.g. "auth0|<jwt>".
func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result interface{}) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// ListProducts reads one of the approved product listings. Pagination only applies to ListingAll.
func (c *Client) ListProducts(ctx context.Context, listing Listing, page, pageSize int) ([]domain.Product, error) {
	var path string
	switch listing {
	case ListingAll, "":
		path = "/v1/products"
		params := url.Values{}
		if page > 0 {
			params.Set("page", strconv.Itoa(page))
		}
		if pageSize > 0 {
			params.Set("page_size", strconv.Itoa(pageSize))
		}
		if len(params) > 0 {
			path += "?" + params.Encode()
		}
	case ListingFeatured, ListingRecent:
		path = "/v1/products/" + string(listing)
	default:
		return nil, fmt.Errorf("unknown listing [%s]", listing)
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	var result ProductsResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// GetProduct retrieves a single product by its slug.
func (c *Client) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/products/"+url.PathEscape(slug))
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := c.handleResponse(resp, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *Client) Upvote(ctx context.Context, productID int64) (domain.VoteResult, error) {
	return c.vote(ctx, productID, "upvote")
}

func (c *Client) Downvote(ctx context.Context, productID int64) (domain.VoteResult, error) {
	return c.vote(ctx, productID, "downvote")
}

// vote posts a vote. Failed votes still return the VoteResult the API sent, alongside an *APIError.
func (c *Client) vote(ctx context.Context, productID int64, action string) (domain.VoteResult, error) {
	path := fmt.Sprintf("/v1/products/%d/%s", productID, action)
	resp, err := c.doRequest(ctx, http.MethodPost, path)
	if err != nil {
		return domain.VoteResult{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.VoteResult{}, fmt.Errorf("reading response: %w", err)
	}

	var result domain.VoteResult
	decodeErr := json.Unmarshal(body, &result)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: result.Message}
		if decodeErr != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(body))
		}
		result.Success = false
		return result, apiErr
	}
	if decodeErr != nil {
		return domain.VoteResult{}, fmt.Errorf("decoding response: %w", decodeErr)
	}
	if !result.Success {
		return result, errors.New(result.Message)
	}

	return result, nil
}
