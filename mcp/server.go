// Package mcp exposes the product-search orchestrator as a single callable
// tool over the Model Context Protocol's stdio transport.
package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/fwojciec/asrockind"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolProductSearch is the registered tool name.
const ToolProductSearch = "asrock_industrial_product_search"

// Version reported in the MCP handshake.
const Version = "1.0.0"

const toolDescription = "Search for ASRock Industrial products by keyword. " +
	"Returns product name, URL, and detailed specifications. " +
	"Uses optimized scraping with fallback for reliability."

// ProductSearcher is the orchestrator surface the tool boundary needs.
type ProductSearcher interface {
	// Search runs the fallback chain for a validated query.
	Search(ctx context.Context, query string) (asrockind.SearchResult, error)

	// Method reports which scraping paths the next search can use.
	Method() string
}

// SearchInfo describes how a search was performed.
type SearchInfo struct {
	Source               string `json:"source"`
	MaxProductsPerSearch int    `json:"max_products_per_search"`
	SearchMethod         string `json:"search_method"`
}

// Response is the JSON envelope returned to the tool caller.
type Response struct {
	Query        string              `json:"query"`
	TotalResults int                 `json:"total_results"`
	Products     []asrockind.Product `json:"products"`
	SearchInfo   SearchInfo          `json:"search_info"`
}

// Server wraps an MCP stdio server with the product-search tool registered.
type Server struct {
	mcp *server.MCPServer
}

// NewServer creates the MCP server and registers the search tool.
func NewServer(searcher ProductSearcher, cfg asrockind.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := server.NewMCPServer(cfg.ServerName, Version, server.WithToolCapabilities(false))

	tool := mcp.NewTool(ToolProductSearch,
		mcp.WithDescription(toolDescription),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query for products (e.g., 'SBC-230', 'motherboard', 'embedded system', 'IMB')"),
		),
	)
	s.AddTool(tool, NewSearchHandler(searcher, cfg, logger))

	return &Server{mcp: s}
}

// ServeStdio blocks serving MCP requests on stdin/stdout until the client
// disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// NewSearchHandler builds the tool handler. Validation errors surface as
// tool errors before any scraping is attempted; a search that finds nothing
// still returns a well-formed envelope with zero products.
func NewSearchHandler(searcher ProductSearcher, cfg asrockind.Config, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := req.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError("Missing required argument: query"), nil
		}

		query, err := asrockind.ValidateQuery(raw)
		if err != nil {
			return mcp.NewToolResultError(asrockind.ErrorMessage(err)), nil
		}

		result, err := searcher.Search(ctx, query)
		if err != nil {
			logger.Error("tool call error", "tool", ToolProductSearch, "query", query, "err", err)
			return nil, err
		}

		resp := Response{
			Query:        query,
			TotalResults: result.TotalResults,
			Products:     result.Products,
			SearchInfo: SearchInfo{
				Source:               "ASRock Industrial website",
				MaxProductsPerSearch: cfg.MaxProducts,
				SearchMethod:         searcher.Method(),
			},
		}

		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return nil, asrockind.Errorf(asrockind.EINTERNAL, "encoding response: %v", err)
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}
