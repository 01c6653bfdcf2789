package mcp

import (
	"errors"
	"fmt"

	"github.com/ganot/gong-mcp/internal/domain/call"
	"github.com/ganot/gong-mcp/internal/gong"
)

// Error codes surfaced to MCP clients.
const (
	CodeNotConfigured = "NOT_CONFIGURED"
	CodeInvalidParams = "INVALID_PARAMS"
	CodeNotFound      = "NOT_FOUND"
	CodeUpstreamError = "UPSTREAM_ERROR"
	CodeDecodeError   = "DECODE_ERROR"
)

// APIError represents an MCP error response: a machine-readable code plus a
// structured detail object echoing the offending uri/id/argument. An error
// response never carries partial results.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func notConfiguredError(details any) *APIError {
	return &APIError{
		Code:    CodeNotConfigured,
		Message: "Gong API is not configured. Set GONG_BASE_URL, GONG_ACCESS_KEY and GONG_ACCESS_KEY_SECRET.",
		Details: details,
	}
}

func invalidParamsError(message string, details any) *APIError {
	return &APIError{Code: CodeInvalidParams, Message: message, Details: details}
}

// MapError maps upstream and domain errors to the error taxonomy. The
// details object travels through unchanged so the caller controls what gets
// echoed.
func MapError(err error, details map[string]any) *APIError {
	var statusErr *gong.StatusError

	switch {
	case errors.Is(err, call.ErrCallNotFound):
		return &APIError{Code: CodeNotFound, Message: "call not found", Details: details}
	case errors.Is(err, call.ErrTranscriptNotFound):
		return &APIError{Code: CodeNotFound, Message: "no transcript found for this call", Details: details}
	case errors.Is(err, gong.ErrNotFound):
		return &APIError{Code: CodeNotFound, Message: "no matching record upstream", Details: details}
	case errors.Is(err, gong.ErrDecode):
		return &APIError{Code: CodeDecodeError, Message: "upstream response could not be parsed", Details: withCause(details, err)}
	case errors.Is(err, gong.ErrUnauthorized):
		return &APIError{Code: CodeUpstreamError, Message: "upstream rejected the credentials", Details: details}
	case errors.As(err, &statusErr):
		d := withCause(details, err)
		d["status"] = statusErr.Status
		return &APIError{Code: CodeUpstreamError, Message: "upstream call failed", Details: d}
	default:
		return &APIError{Code: CodeUpstreamError, Message: "upstream call failed", Details: withCause(details, err)}
	}
}

func withCause(details map[string]any, err error) map[string]any {
	if details == nil {
		details = map[string]any{}
	}
	details["error"] = err.Error()
	return details
}
