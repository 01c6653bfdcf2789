package mcp

import (
	"errors"
	"strings"
)

// Resource URI grammar. Matching is checked in a fixed order, most specific
// first, on path-segment boundaries: a literal call id ending in
// "participants" or "transcript" without a separating "/" is still a call
// id, never a sub-resource.
const (
	uriStatus  = "gong://status"
	uriUsers   = "gong://users"
	callPrefix = "gong://calls/"

	leafTranscript   = "transcript"
	leafParticipants = "participants"
)

type routeKind int

const (
	routeUnknown routeKind = iota
	routeStatus
	routeUsers
	routeCall
	routeParticipants
	routeTranscript
)

// route is the classified form of a resource URI. Classification is total:
// every string lands on exactly one kind.
type route struct {
	kind   routeKind
	callID string
}

// errMissingCallID marks URIs that match a call route shape but carry an
// empty identifier segment, e.g. gong://calls//transcript.
var errMissingCallID = errors.New("missing call id")

// parseURI classifies a resource URI.
func parseURI(uri string) (route, error) {
	switch uri {
	case uriStatus:
		return route{kind: routeStatus}, nil
	case uriUsers:
		return route{kind: routeUsers}, nil
	}

	rest, ok := strings.CutPrefix(uri, callPrefix)
	if !ok {
		return route{kind: routeUnknown}, nil
	}

	if id, ok := cutLeaf(rest, leafTranscript); ok {
		if id == "" {
			return route{}, errMissingCallID
		}
		return route{kind: routeTranscript, callID: id}, nil
	}
	if id, ok := cutLeaf(rest, leafParticipants); ok {
		if id == "" {
			return route{}, errMissingCallID
		}
		return route{kind: routeParticipants, callID: id}, nil
	}
	if rest == "" {
		return route{}, errMissingCallID
	}
	return route{kind: routeCall, callID: rest}, nil
}

// cutLeaf strips a trailing path segment. A bare leaf ("transcript") is the
// empty-id form of the sub-resource, not a call id.
func cutLeaf(rest, leaf string) (string, bool) {
	if rest == leaf {
		return "", true
	}
	if id, ok := strings.CutSuffix(rest, "/"+leaf); ok {
		return id, true
	}
	return "", false
}
