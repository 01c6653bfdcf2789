package mcp

import (
	"errors"
	"testing"

	"github.com/ganot/gong-mcp/internal/domain/call"
	"github.com/ganot/gong-mcp/internal/gong"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	details := map[string]any{"uri": "gong://calls/1"}

	apiErr := MapError(call.ErrCallNotFound, details)
	require.Equal(t, CodeNotFound, apiErr.Code)

	apiErr = MapError(call.ErrTranscriptNotFound, details)
	require.Equal(t, CodeNotFound, apiErr.Code)

	apiErr = MapError(gong.ErrNotFound, details)
	require.Equal(t, CodeNotFound, apiErr.Code)

	apiErr = MapError(gong.ErrUnauthorized, details)
	require.Equal(t, CodeUpstreamError, apiErr.Code)

	apiErr = MapError(errors.New("network down"), details)
	require.Equal(t, CodeUpstreamError, apiErr.Code)
}

func TestMapError_WrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("fetching call"), call.ErrCallNotFound)
	require.Equal(t, CodeNotFound, MapError(wrapped, nil).Code)
}

func TestMapError_DecodeError(t *testing.T) {
	err := errors.Join(gong.ErrDecode, errors.New("unexpected EOF"))
	apiErr := MapError(err, map[string]any{"uri": "gong://users"})
	require.Equal(t, CodeDecodeError, apiErr.Code)

	d, ok := apiErr.Details.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "gong://users", d["uri"])
	require.Contains(t, d["error"], "unexpected EOF")
}

func TestMapError_StatusError(t *testing.T) {
	apiErr := MapError(&gong.StatusError{Status: 502, Body: "bad gateway"}, nil)
	require.Equal(t, CodeUpstreamError, apiErr.Code)

	d, ok := apiErr.Details.(map[string]any)
	require.True(t, ok)
	require.Equal(t, 502, d["status"])
}
