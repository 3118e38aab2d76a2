// Package server provides the MCP server implementation.
package server

import (
	"context"
	"sync"

	"github.com/jbeshir/product-showcase/cmd/mcp/client"
	"github.com/jbeshir/product-showcase/internal/domain"
	"github.com/jbeshir/product-showcase/internal/voteview"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ProductAPI is the subset of the showcase API the MCP tools use.
type ProductAPI interface {
	voteview.Voter
	ListProducts(ctx context.Context, listing client.Listing, page, pageSize int) ([]domain.Product, error)
	GetProduct(ctx context.Context, slug string) (*domain.Product, error)
}

// Server is the MCP server for the Product Showcase.
type Server struct {
	client    ProductAPI
	mcpServer *server.MCPServer

	viewsMu sync.Mutex
	views   map[int64]*voteview.View
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient ProductAPI) *Server {
	s := &Server{
		client: apiClient,
		views:  make(map[int64]*voteview.View),
	}

	s.mcpServer = server.NewMCPServer(
		"product-showcase",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

// voteView returns the vote view for a product, refreshed with the product's latest read.
// A view with a vote pending keeps its state; the vote in flight resolves against it.
func (s *Server) voteView(product *domain.Product) *voteview.View {
	hasVoted := product.HasVoted != nil && *product.HasVoted

	s.viewsMu.Lock()
	defer s.viewsMu.Unlock()

	view, ok := s.views[product.ID]
	if !ok {
		view = voteview.New(product.ID, product.VoteCount, hasVoted, s.client)
		view.Timeout = voteTimeout
		s.views[product.ID] = view
		return view
	}
	view.Refresh(product.VoteCount, hasVoted)
	return view
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_products",
		mcp.WithDescription(
			"List approved products on the showcase, highest vote count first. "+
				"'featured' lists every approved product, 'recent' those launched in the last week, "+
				"'all' is paginated."),
		mcp.WithString("listing",
			mcp.Description("Which listing to read: 'all' (default), 'featured' or 'recent'"),
			mcp.Enum(string(client.ListingAll), string(client.ListingFeatured), string(client.ListingRecent)),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number for the 'all' listing (1-indexed, default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of products per page for the 'all' listing (default: 50, max: 200)"),
		),
	), s.handleListProducts)

	s.mcpServer.AddTool(mcp.NewTool("get_product",
		mcp.WithDescription(
			"Get full details of a product by its slug, including its vote count and "+
				"whether you have voted for it."),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("The slug of the product to retrieve"),
		),
	), s.handleGetProduct)

	s.mcpServer.AddTool(mcp.NewTool("upvote_product",
		mcp.WithDescription(
			"Upvote a product. Requires authentication as a member of an organization. "+
				"Only one vote per product may be in flight at a time."),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("The slug of the product to upvote"),
		),
	), s.handleUpvoteProduct)

	s.mcpServer.AddTool(mcp.NewTool("downvote_product",
		mcp.WithDescription(
			"Withdraw your upvote from a product. Only available for products you have voted for."),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("The slug of the product to downvote"),
		),
	), s.handleDownvoteProduct)
}
