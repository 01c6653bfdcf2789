package mcp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseURI(t *testing.T) {
	tests := []struct {
		name   string
		uri    string
		kind   routeKind
		callID string
	}{
		{"status", "gong://status", routeStatus, ""},
		{"users", "gong://users", routeUsers, ""},
		{"call", "gong://calls/123", routeCall, "123"},
		{"participants", "gong://calls/123/participants", routeParticipants, "123"},
		{"transcript", "gong://calls/123/transcript", routeTranscript, "123"},
		{"id with slash-like tail", "gong://calls/abc-def", routeCall, "abc-def"},
		{"id ending in participants", "gong://calls/xparticipants", routeCall, "xparticipants"},
		{"id ending in transcript", "gong://calls/mytranscript", routeCall, "mytranscript"},
		{"nested id before leaf", "gong://calls/a/b/transcript", routeTranscript, "a/b"},
		{"bare calls root", "gong://calls", routeUnknown, ""},
		{"unknown scheme", "other://calls/123", routeUnknown, ""},
		{"unknown root", "gong://recordings/5", routeUnknown, ""},
		{"status with trailing segment", "gong://status/extra", routeUnknown, ""},
		{"empty string", "", routeUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := parseURI(tt.uri)
			require.NoError(t, err)
			require.Equal(t, tt.kind, r.kind)
			require.Equal(t, tt.callID, r.callID)
		})
	}
}

func TestParseURI_MissingCallID(t *testing.T) {
	for _, uri := range []string{
		"gong://calls/",
		"gong://calls/transcript",
		"gong://calls/participants",
		"gong://calls//transcript",
		"gong://calls//participants",
	} {
		t.Run(uri, func(t *testing.T) {
			_, err := parseURI(uri)
			require.ErrorIs(t, err, errMissingCallID)
		})
	}
}
