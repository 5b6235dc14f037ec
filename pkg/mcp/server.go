package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/iracd/iracd/pkg/remote"
)

// Server wraps the MCP server with iracd's remote control functionality
type Server struct {
	mcpServer *server.MCPServer
	svc       remote.Service
}

// NewServer creates a new MCP server for air conditioner control
func NewServer(svc remote.Service) *Server {
	s := &Server{
		svc: svc,
	}

	// Create MCP server
	s.mcpServer = server.NewMCPServer(
		"iracd",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register all tools
	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
