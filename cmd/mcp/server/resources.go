package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const productURIPrefix = "product://"

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			productURIPrefix+"{slug}",
			"Individual product from the showcase",
			mcp.WithTemplateDescription(
				"Fetch a specific product by its slug. Includes name, tagline, "+
					"description, website, tags, vote count and submission details."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleProductResource,
	)
}

func (s *Server) handleProductResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, productURIPrefix) {
		return nil, fmt.Errorf("invalid product URI format: %s", uri)
	}

	slug := strings.TrimPrefix(uri, productURIPrefix)
	if slug == "" {
		return nil, fmt.Errorf("missing slug in URI: %s", uri)
	}

	product, err := s.client.GetProduct(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", slug, err)
	}

	data, err := json.MarshalIndent(product, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal product: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
