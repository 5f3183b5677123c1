package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bull/hr-assistant/internal/employee"
)

// Assistant is the slice of the orchestrator the tools need.
type Assistant interface {
	Answer(ctx context.Context, query string) (string, error)
	Search(ctx context.Context, query string, topK int) ([]employee.Record, error)
}

// Server wraps the MCP server with its dependencies.
type Server struct {
	server    *mcp.Server
	assistant Assistant
}

// NewServer creates a configured MCP server with the HR tools registered.
func NewServer(assistant Assistant) *Server {
	impl := &mcp.Implementation{
		Name:    "hr-assistant-server",
		Version: "v0.1.0",
	}

	server := mcp.NewServer(impl, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_employees",
		Description: "Search the employee roster semantically by skills, experience, past projects or availability. Returns matching profiles without generating an answer.",
	}, makeSearchHandler(assistant))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ask_hr",
		Description: "Ask the HR assistant a natural-language question about the employee roster. The answer is grounded in retrieved employee profiles.",
	}, makeAskHandler(assistant))

	return &Server{
		server:    server,
		assistant: assistant,
	}
}

// Run starts the server with stdio transport (blocks until client disconnects).
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server instance.
// Used by transport handlers that need to wrap the server.
func (s *Server) MCPServer() *mcp.Server {
	return s.server
}
