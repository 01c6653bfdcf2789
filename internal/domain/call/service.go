package call

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ganot/gong-mcp/internal/gong"
)

// API is the slice of the Gong client the call service needs.
type API interface {
	ListCalls(ctx context.Context, req gong.CallsRequest) (*gong.CallsResponse, error)
	GetTranscripts(ctx context.Context, req gong.TranscriptRequest) (*gong.TranscriptResponse, error)
}

// Service resolves call resources and searches against the upstream API.
// It holds no state between requests; every call is resolved fresh.
type Service struct {
	api    API
	logger *slog.Logger
}

// NewService creates a new call service.
func NewService(api API, logger *slog.Logger) *Service {
	return &Service{api: api, logger: logger}
}

// Get fetches the full metadata view for one call. An empty upstream page
// is a not-found: this route addresses exactly one call.
func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	c, err := s.fetchOne(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := shapeDetail(*c)
	return &detail, nil
}

// Participants fetches the participant list, derived summary and speaker
// map for one call.
func (s *Service) Participants(ctx context.Context, id string) (*ParticipantReport, error) {
	c, err := s.fetchOne(ctx, id)
	if err != nil {
		return nil, err
	}
	refs := shapeParticipants(c.Parties)
	return &ParticipantReport{
		CallID:       id,
		Participants: refs,
		Summary:      summarizeParticipants(refs),
		Speakers:     speakerMap(refs),
	}, nil
}

// Transcript fetches and flattens the transcript for one call.
func (s *Service) Transcript(ctx context.Context, id string) (*Transcript, error) {
	resp, err := s.api.GetTranscripts(ctx, transcriptRequest(id))
	if err != nil {
		if errors.Is(err, gong.ErrNotFound) {
			return nil, ErrTranscriptNotFound
		}
		return nil, fmt.Errorf("fetching transcript: %w", err)
	}
	if len(resp.CallTranscripts) == 0 {
		return nil, ErrTranscriptNotFound
	}

	transcript := shapeTranscript(resp.CallTranscripts[0], id)
	if s.logger != nil {
		s.logger.Debug("transcript fetched", "call_id", id, "sentences", transcript.SentenceCount, "speakers", transcript.SpeakerCount)
	}
	return &transcript, nil
}

// Search runs one filtered page fetch and applies the truncation policy.
// Zero matches is a valid empty result, not an error.
func (s *Service) Search(ctx context.Context, f Filter, limit *int) (*SearchResult, error) {
	resp, err := s.api.ListCalls(ctx, callsRequest(f))
	if err != nil {
		return nil, fmt.Errorf("listing calls: %w", err)
	}

	all := make([]Summary, 0, len(resp.Calls))
	for _, c := range resp.Calls {
		all = append(all, shapeSummary(c))
	}

	kept, truncated := Truncate(all, limit)
	result := &SearchResult{
		Calls:          kept,
		Count:          len(kept),
		TotalAvailable: len(all),
		Truncated:      truncated,
		NextCursor:     resp.Records.Cursor,
		HasMore:        resp.Records.Cursor != "",
		FiltersEcho: FilterEcho{
			FromDateTime:     f.FromDateTime,
			ToDateTime:       f.ToDateTime,
			WorkspaceID:      f.WorkspaceID,
			CallIDs:          f.CallIDs,
			PrimaryUserIDs:   f.PrimaryUserIDs,
			Cursor:           f.Cursor,
			IncludeStructure: f.IncludeStructure,
			Limit:            limit,
		},
	}

	if s.logger != nil {
		s.logger.Debug("search completed", "total", result.TotalAvailable, "count", result.Count, "truncated", result.Truncated, "has_more", result.HasMore)
	}
	return result, nil
}

func (s *Service) fetchOne(ctx context.Context, id string) (*gong.Call, error) {
	resp, err := s.api.ListCalls(ctx, singleCallRequest(id))
	if err != nil {
		if errors.Is(err, gong.ErrNotFound) {
			return nil, ErrCallNotFound
		}
		return nil, fmt.Errorf("fetching call: %w", err)
	}
	if len(resp.Calls) == 0 {
		return nil, ErrCallNotFound
	}
	return &resp.Calls[0], nil
}
