package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jbeshir/product-showcase/cmd/mcp/client"
	"github.com/jbeshir/product-showcase/internal/domain"
	"github.com/jbeshir/product-showcase/internal/voteview"
	"github.com/mark3labs/mcp-go/mcp"
)

const voteTimeout = 15 * time.Second

func (s *Server) handleListProducts(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	listing := client.ListingAll
	if l, ok := args["listing"].(string); ok && l != "" {
		listing = client.Listing(l)
	}
	page, pageSize := parsePagination(args)

	products, err := s.client.ListProducts(ctx, listing, page, pageSize)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list products: %v", err)), nil
	}

	return formatProductsResult(products)
}

func (s *Server) handleGetProduct(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	slug, ok := request.GetArguments()["slug"].(string)
	if !ok || slug == "" {
		return mcp.NewToolResultError("slug is required"), nil
	}

	product, err := s.client.GetProduct(ctx, slug)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get product: %v", err)), nil
	}

	return formatProductResult(product)
}

func (s *Server) handleUpvoteProduct(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	return s.handleVote(ctx, request, domain.VoteUp)
}

func (s *Server) handleDownvoteProduct(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	return s.handleVote(ctx, request, domain.VoteDown)
}

func (s *Server) handleVote(
	ctx context.Context,
	request mcp.CallToolRequest,
	direction domain.VoteDirection,
) (*mcp.CallToolResult, error) {
	slug, ok := request.GetArguments()["slug"].(string)
	if !ok || slug == "" {
		return mcp.NewToolResultError("slug is required"), nil
	}

	product, err := s.client.GetProduct(ctx, slug)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get product: %v", err)), nil
	}

	view := s.voteView(product)

	var result domain.VoteResult
	if direction == domain.VoteUp {
		result, err = view.Upvote(ctx)
	} else {
		result, err = view.Downvote(ctx)
	}

	switch {
	case errors.Is(err, voteview.ErrVotePending):
		return mcp.NewToolResultError(
			fmt.Sprintf("a vote on %s is already in progress; wait for it to finish", slug)), nil
	case errors.Is(err, voteview.ErrDownvoteDisabled):
		return mcp.NewToolResultError(
			fmt.Sprintf("you can only downvote %s after upvoting it", slug)), nil
	case err != nil:
		msg := result.Message
		if msg == "" {
			msg = err.Error()
		}
		return mcp.NewToolResultError(
			fmt.Sprintf("failed to %s %s: %s (vote count %d)", direction.Verb(), slug, msg, view.Count())), nil
	}

	return mcp.NewToolResultText(
		fmt.Sprintf("%s Vote count for %s is now about %d.", result.Message, slug, view.Count())), nil
}

func parsePagination(args map[string]any) (page, pageSize int) {
	page = 1
	pageSize = 50

	if p, ok := args["page"].(float64); ok && p > 0 {
		page = int(p)
	}
	if ps, ok := args["page_size"].(float64); ok && ps > 0 {
		pageSize = min(int(ps), 200)
	}
	return page, pageSize
}

func formatProductsResult(products []domain.Product) (*mcp.CallToolResult, error) {
	if len(products) == 0 {
		return mcp.NewToolResultText("No products found."), nil
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format products: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	msg := fmt.Sprintf("Found %d product(s):\n\n%s", len(products), string(data))
	return mcp.NewToolResultText(msg), nil
}

func formatProductResult(product *domain.Product) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(product, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format product: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
