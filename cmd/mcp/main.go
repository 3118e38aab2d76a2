// Package main provides the entry point for the Product Showcase MCP server.
//
// This MCP server lets AI agents browse showcase products and vote on them.
//
// Configuration:
//
//	SHOWCASE_API_URL   - Base URL of the API (default: http://localhost:8080)
//	SHOWCASE_API_TOKEN - Bearer token for authentication (format: auth0|<jwt>); optional for read-only use
//
// Usage with an MCP client:
//
//	mcp add product-showcase --transport stdio \
//	  --env SHOWCASE_API_TOKEN=auth0|xxx \
//	  -- /path/to/product-showcase-mcp
package main

import (
	"log"
	"os"

	"github.com/jbeshir/product-showcase/cmd/mcp/client"
	"github.com/jbeshir/product-showcase/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("SHOWCASE_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	apiClient := client.NewClient(apiURL, os.Getenv("SHOWCASE_API_TOKEN"))
	srv := server.NewServer(apiClient)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
