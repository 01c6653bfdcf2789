package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// statusPayload is the gong://status resource body.
type statusPayload struct {
	Configured bool   `json:"configured"`
	BaseURL    string `json:"baseUrl,omitempty"`
	Message    string `json:"message"`
}

// registerResources declares the resource catalog. The status resource is
// always listed; everything else is advertised only when credentials are
// present, so an unconfigured server lists exactly one resource and no
// templates. Reads are dispatched by the routing middleware regardless, so
// unadvertised URIs still produce taxonomy errors rather than SDK
// not-found failures.
func (s *server) registerResources(srv *sdkmcp.Server) {
	srv.AddResource(&sdkmcp.Resource{
		URI:         uriStatus,
		Name:        "status",
		Title:       "Configuration Status",
		Description: "Check if the Gong API is configured correctly",
		MIMEType:    "application/json",
	}, s.handleReadResource)

	if !s.creds.Configured() {
		return
	}

	srv.AddResource(&sdkmcp.Resource{
		URI:         uriUsers,
		Name:        "users",
		Title:       "Gong Users",
		Description: "List of users in your Gong workspace",
		MIMEType:    "application/json",
	}, s.handleReadResource)

	templates := []*sdkmcp.ResourceTemplate{
		{
			URITemplate: "gong://calls/{callId}",
			Name:        "call",
			Title:       "Call Details",
			Description: "Full metadata for a specific Gong call by ID",
			MIMEType:    "application/json",
		},
		{
			URITemplate: "gong://calls/{callId}/participants",
			Name:        "call_participants",
			Title:       "Call Participants",
			Description: "Participants of a Gong call with affiliation summary and speaker map",
			MIMEType:    "application/json",
		},
		{
			URITemplate: "gong://calls/{callId}/transcript",
			Name:        "call_transcript",
			Title:       "Call Transcript",
			Description: "Retrieve the transcript for a specific Gong call by ID",
			MIMEType:    "application/json",
		},
	}
	for _, tmpl := range templates {
		srv.AddResourceTemplate(tmpl, s.handleReadResource)
	}
}

// handleReadResource backs every registered resource and template. The
// routing middleware normally intercepts reads first; this path serves
// direct SDK dispatch with identical behavior.
func (s *server) handleReadResource(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	uri := ""
	if req != nil && req.Params != nil {
		uri = req.Params.URI
	}
	return s.readResource(ctx, uri)
}

// readResource routes a URI, applies the configuration gate (status is
// exempt), queries upstream and shapes the result as pretty-printed JSON.
func (s *server) readResource(ctx context.Context, uri string) (*sdkmcp.ReadResourceResult, error) {
	r, err := parseURI(uri)
	if err != nil {
		if errors.Is(err, errMissingCallID) {
			return nil, invalidParamsError("call id cannot be empty", map[string]any{"uri": uri})
		}
		return nil, invalidParamsError("invalid resource URI", map[string]any{"uri": uri})
	}

	if r.kind == routeUnknown {
		return nil, invalidParamsError("unrecognized resource URI", map[string]any{"uri": uri})
	}

	if r.kind == routeStatus {
		return s.readStatus(uri)
	}

	if !s.creds.Configured() {
		return nil, notConfiguredError(map[string]any{"uri": uri})
	}

	switch r.kind {
	case routeUsers:
		dir, err := s.users.List(ctx, "")
		if err != nil {
			return nil, MapError(err, map[string]any{"uri": uri})
		}
		return jsonResource(uri, dir)

	case routeCall:
		detail, err := s.calls.Get(ctx, r.callID)
		if err != nil {
			return nil, MapError(err, map[string]any{"uri": uri, "callId": r.callID})
		}
		return jsonResource(uri, detail)

	case routeParticipants:
		report, err := s.calls.Participants(ctx, r.callID)
		if err != nil {
			return nil, MapError(err, map[string]any{"uri": uri, "callId": r.callID})
		}
		return jsonResource(uri, report)

	case routeTranscript:
		transcript, err := s.calls.Transcript(ctx, r.callID)
		if err != nil {
			return nil, MapError(err, map[string]any{"uri": uri, "callId": r.callID})
		}
		return jsonResource(uri, transcript)

	default:
		return nil, invalidParamsError("unrecognized resource URI", map[string]any{"uri": uri})
	}
}

func (s *server) readStatus(uri string) (*sdkmcp.ReadResourceResult, error) {
	status := statusPayload{
		Configured: s.creds.Configured(),
	}
	if status.Configured {
		status.BaseURL = s.creds.BaseURL
		status.Message = "Gong API is configured and ready to use"
	} else {
		status.Message = "Gong API is not configured. Set GONG_BASE_URL, GONG_ACCESS_KEY and GONG_ACCESS_KEY_SECRET."
	}
	return jsonResource(uri, status)
}

// jsonResource renders a payload as pretty-printed JSON text content
// echoing the request URI.
func jsonResource(uri string, payload any) (*sdkmcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding resource %s: %w", uri, err)
	}
	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
