// Package mcp assembles the MCP server surface: resource routing, the
// search tool, and the mapping from domain errors to protocol errors.
package mcp

import (
	"context"
	"log/slog"

	"github.com/ganot/gong-mcp/internal/config"
	"github.com/ganot/gong-mcp/internal/domain/call"
	"github.com/ganot/gong-mcp/internal/domain/user"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `gong-mcp exposes Gong conversation data as MCP resources and tools.

Resources:
- gong://status: configuration status (always available)
- gong://users: users in the Gong workspace
- gong://calls/{callId}: full metadata for one call
- gong://calls/{callId}/participants: participants with summary and speaker map
- gong://calls/{callId}/transcript: flattened transcript with sentence and speaker counts

Tools:
- search_calls: filtered call search (date range, workspace, call ids, primary user ids, cursor, limit)

Configure with the GONG_BASE_URL, GONG_ACCESS_KEY and GONG_ACCESS_KEY_SECRET
environment variables. Without them only gong://status is available.`

// CallService defines the call operations needed by the MCP surface.
type CallService interface {
	Get(ctx context.Context, id string) (*call.Detail, error)
	Participants(ctx context.Context, id string) (*call.ParticipantReport, error)
	Transcript(ctx context.Context, id string) (*call.Transcript, error)
	Search(ctx context.Context, f call.Filter, limit *int) (*call.SearchResult, error)
}

// UserService defines the user operations needed by the MCP surface.
type UserService interface {
	List(ctx context.Context, cursor string) (*user.Directory, error)
}

// Config contains server configuration.
type Config struct {
	Credentials config.Credentials
	Calls       CallService
	Users       UserService
	Logger      *slog.Logger
	Version     string
}

type server struct {
	creds  config.Credentials
	calls  CallService
	users  UserService
	logger *slog.Logger
}

// NewServer creates and configures an MCP server with all resources, tools
// and middleware. The credential gate is fixed at construction: an
// unconfigured server advertises only the status resource, and every other
// operation fails with NOT_CONFIGURED before any upstream call.
func NewServer(cfg Config) *sdkmcp.Server {
	s := &server{
		creds:  cfg.Credentials,
		calls:  cfg.Calls,
		users:  cfg.Users,
		logger: cfg.Logger,
	}

	srv := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "gong-mcp",
		Version: cfg.Version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	// Route resource reads through the URI router so empty-id and
	// unrecognized URIs get taxonomy errors instead of SDK match failures.
	srv.AddReceivingMiddleware(s.resourceRoutingMiddleware())
	srv.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	srv.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	s.registerResources(srv)
	s.registerTools(srv)

	return srv
}

func (s *server) resourceRoutingMiddleware() sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if method != "resources/read" {
				return next(ctx, method, req)
			}
			params, ok := req.GetParams().(*sdkmcp.ReadResourceParams)
			if !ok || params == nil {
				return next(ctx, method, req)
			}
			return s.readResource(ctx, params.URI)
		}
	}
}
