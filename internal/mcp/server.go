// ABOUTME: MCP server exposing the fitness core to AI assistants.
// ABOUTME: Every tool acts on behalf of the session the server was started with.
package mcp

import (
	"context"
	"errors"

	"github.com/harperreed/fitness/internal/service"
	"github.com/harperreed/fitness/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// Server wraps the MCP server with service and session access.
type Server struct {
	mcpServer *mcp.Server
	svc       *service.Service
	sess      *session.Session
}

// NewServer creates a new MCP server bound to an open session.
func NewServer(svc *service.Service, sess *session.Session) (*Server, error) {
	if svc == nil {
		return nil, errors.New("mcp: nil service")
	}
	if !sess.Active() {
		return nil, service.ErrNotAuthenticated
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fitness",
			Version: Version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		svc:       svc,
		sess:      sess,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
