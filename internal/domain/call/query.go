package call

import "github.com/ganot/gong-mcp/internal/gong"

// callsRequest builds the /v2/calls/extensive body for a search filter.
// Parties are always requested; structure only on demand, since it is the
// most expensive optional block. Outcome, highlights and tracker content
// are never requested.
func callsRequest(f Filter) gong.CallsRequest {
	selector := &gong.CallContentSelector{
		ExposedFields: gong.ExposedFields{Parties: true},
	}
	if f.IncludeStructure {
		selector.ExposedFields.Content = &gong.CallContent{Structure: true}
	}

	return gong.CallsRequest{
		Cursor: f.Cursor,
		Filter: gong.CallsFilter{
			FromDateTime:   f.FromDateTime,
			ToDateTime:     f.ToDateTime,
			WorkspaceID:    f.WorkspaceID,
			CallIDs:        f.CallIDs,
			PrimaryUserIDs: f.PrimaryUserIDs,
		},
		ContentSelector: selector,
	}
}

// singleCallRequest builds the list request used for all single-call
// lookups: one call id, no date filter. The list operation is used instead
// of the dedicated single-call endpoint because only the list payload
// carries parties data.
func singleCallRequest(id string) gong.CallsRequest {
	return gong.CallsRequest{
		Filter: gong.CallsFilter{CallIDs: []string{id}},
		ContentSelector: &gong.CallContentSelector{
			ExposedFields: gong.ExposedFields{Parties: true},
		},
	}
}

// transcriptRequest builds the transcript fetch for one call: single-id
// filter, no date range.
func transcriptRequest(id string) gong.TranscriptRequest {
	return gong.TranscriptRequest{
		Filter: gong.CallsFilter{CallIDs: []string{id}},
	}
}
