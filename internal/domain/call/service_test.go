package call

import (
	"context"
	"testing"

	"github.com/ganot/gong-mcp/internal/gong"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// apiMock is a mock for the API interface.
type apiMock struct {
	mock.Mock
}

func (m *apiMock) ListCalls(ctx context.Context, req gong.CallsRequest) (*gong.CallsResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*gong.CallsResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *apiMock) GetTranscripts(ctx context.Context, req gong.TranscriptRequest) (*gong.TranscriptResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*gong.TranscriptResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestServiceGet_EmptyPageIsNotFound(t *testing.T) {
	ctx := context.Background()
	api := &apiMock{}
	api.On("ListCalls", ctx, singleCallRequest("missing")).Return(&gong.CallsResponse{}, nil)

	svc := NewService(api, nil)
	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrCallNotFound)
}

func TestServiceGet_UpstreamNotFound(t *testing.T) {
	ctx := context.Background()
	api := &apiMock{}
	api.On("ListCalls", ctx, mock.Anything).Return(nil, gong.ErrNotFound)

	svc := NewService(api, nil)
	_, err := svc.Get(ctx, "42")
	require.ErrorIs(t, err, ErrCallNotFound)
}

func TestServiceGet_ShapesDetail(t *testing.T) {
	ctx := context.Background()
	api := &apiMock{}
	api.On("ListCalls", ctx, singleCallRequest("42")).Return(&gong.CallsResponse{
		Calls: []gong.Call{{
			MetaData: &gong.CallMetaData{
				ID:    strPtr("42"),
				Title: strPtr("Renewal call"),
				Scope: strPtr("External"),
			},
			Parties: []gong.Party{
				{Name: strPtr("Ana"), Affiliation: strPtr("Internal"), SpeakerID: strPtr("s1")},
				{Name: strPtr("Bob"), Affiliation: strPtr("External")},
			},
		}},
	}, nil)

	svc := NewService(api, nil)
	detail, err := svc.Get(ctx, "42")
	require.NoError(t, err)
	require.Equal(t, "42", detail.ID)
	require.Equal(t, "Renewal call", detail.Title)
	require.Equal(t, "External", *detail.Scope)
	require.Equal(t, 2, detail.ParticipantCount)
	require.Equal(t, 1, detail.ParticipantSummary.Internal)
	require.Equal(t, 1, detail.ParticipantSummary.External)
	require.Equal(t, 1, detail.ParticipantSummary.Speakers)
}

func TestServiceParticipants(t *testing.T) {
	ctx := context.Background()
	api := &apiMock{}
	api.On("ListCalls", ctx, singleCallRequest("7")).Return(&gong.CallsResponse{
		Calls: []gong.Call{{
			Parties: []gong.Party{
				{Name: strPtr("Ana"), Affiliation: strPtr("Internal"), SpeakerID: strPtr("s1")},
				{Name: strPtr("Cam")},
			},
		}},
	}, nil)

	svc := NewService(api, nil)
	report, err := svc.Participants(ctx, "7")
	require.NoError(t, err)
	require.Equal(t, "7", report.CallID)
	require.Len(t, report.Participants, 2)
	require.Equal(t, 2, report.Summary.Total)
	require.Equal(t, 1, report.Summary.Internal)
	require.Zero(t, report.Summary.External)
	require.Equal(t, "Ana (Internal)", report.Speakers["s1"])
}

func TestServiceTranscript_EmptyIsNotFound(t *testing.T) {
	ctx := context.Background()
	api := &apiMock{}
	api.On("GetTranscripts", ctx, transcriptRequest("9")).Return(&gong.TranscriptResponse{}, nil)

	svc := NewService(api, nil)
	_, err := svc.Transcript(ctx, "9")
	require.ErrorIs(t, err, ErrTranscriptNotFound)
}

func TestServiceTranscript_Flattens(t *testing.T) {
	ctx := context.Background()
	api := &apiMock{}
	api.On("GetTranscripts", ctx, transcriptRequest("9")).Return(&gong.TranscriptResponse{
		CallTranscripts: []gong.CallTranscript{{
			CallID: strPtr("9"),
			Transcript: []gong.Monologue{
				{SpeakerID: strPtr("a"), Sentences: []gong.Sentence{{Text: "hello"}, {Text: "there"}}},
				{SpeakerID: strPtr("b"), Sentences: []gong.Sentence{{Text: "hi"}}},
			},
		}},
	}, nil)

	svc := NewService(api, nil)
	tr, err := svc.Transcript(ctx, "9")
	require.NoError(t, err)
	require.Equal(t, 3, tr.SentenceCount)
	require.Equal(t, 2, tr.SpeakerCount)
}

func TestServiceSearch_ZeroResultsIsSuccess(t *testing.T) {
	ctx := context.Background()
	api := &apiMock{}
	api.On("ListCalls", ctx, mock.Anything).Return(&gong.CallsResponse{}, nil)

	svc := NewService(api, nil)
	result, err := svc.Search(ctx, Filter{FromDateTime: "2024-01-01T00:00:00Z"}, nil)
	require.NoError(t, err)
	require.Empty(t, result.Calls)
	require.Zero(t, result.Count)
	require.False(t, result.Truncated)
	require.False(t, result.HasMore)
	require.Equal(t, "2024-01-01T00:00:00Z", result.FiltersEcho.FromDateTime)
}

func TestServiceSearch_TruncationAndPagination(t *testing.T) {
	ctx := context.Background()
	api := &apiMock{}
	api.On("ListCalls", ctx, mock.Anything).Return(&gong.CallsResponse{
		Records: gong.Records{TotalRecords: 40, Cursor: "next-page"},
		Calls: []gong.Call{
			{MetaData: &gong.CallMetaData{ID: strPtr("1")}},
			{MetaData: &gong.CallMetaData{ID: strPtr("2")}},
			{MetaData: &gong.CallMetaData{ID: strPtr("3")}},
		},
	}, nil)

	svc := NewService(api, nil)
	result, err := svc.Search(ctx, Filter{}, intPtr(2))
	require.NoError(t, err)
	require.Equal(t, 2, result.Count)
	require.Equal(t, 3, result.TotalAvailable)
	require.True(t, result.Truncated)
	require.Equal(t, "next-page", result.NextCursor)
	require.True(t, result.HasMore)
	require.Equal(t, 2, *result.FiltersEcho.Limit)
}

func TestServiceSearch_HasMoreIndependentOfTruncation(t *testing.T) {
	ctx := context.Background()
	api := &apiMock{}
	api.On("ListCalls", ctx, mock.Anything).Return(&gong.CallsResponse{
		Calls: []gong.Call{
			{MetaData: &gong.CallMetaData{ID: strPtr("1")}},
			{MetaData: &gong.CallMetaData{ID: strPtr("2")}},
		},
	}, nil)

	svc := NewService(api, nil)
	result, err := svc.Search(ctx, Filter{}, intPtr(1))
	require.NoError(t, err)
	require.True(t, result.Truncated)
	require.False(t, result.HasMore)
	require.Empty(t, result.NextCursor)
}
