package mcp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestNormalizeSearchArgs(t *testing.T) {
	filter, limit, err := normalizeSearchArgs(SearchCallsInput{
		FromDateTime:   "2024-01-01T00:00:00Z",
		WorkspaceID:    "ws1",
		CallIDs:        []string{"1", "2"},
		PrimaryUserIDs: []string{"u1"},
		Cursor:         "abc",
		Limit:          intPtr(10),
	})
	require.NoError(t, err)
	require.Equal(t, "2024-01-01T00:00:00Z", filter.FromDateTime)
	require.Equal(t, "ws1", filter.WorkspaceID)
	require.Equal(t, []string{"1", "2"}, filter.CallIDs)
	require.Equal(t, "abc", filter.Cursor)
	require.False(t, filter.IncludeStructure)
	require.Equal(t, 10, *limit)
}

func TestNormalizeSearchArgs_EmptyInput(t *testing.T) {
	filter, limit, err := normalizeSearchArgs(SearchCallsInput{})
	require.NoError(t, err)
	require.Empty(t, filter.FromDateTime)
	require.Nil(t, filter.CallIDs)
	require.Nil(t, limit)
}

func TestNormalizeSearchArgs_ZeroLimitIsValid(t *testing.T) {
	_, limit, err := normalizeSearchArgs(SearchCallsInput{Limit: intPtr(0)})
	require.NoError(t, err)
	require.Equal(t, 0, *limit)
}

func TestNormalizeSearchArgs_NegativeLimit(t *testing.T) {
	_, _, err := normalizeSearchArgs(SearchCallsInput{Limit: intPtr(-1)})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, CodeInvalidParams, apiErr.Code)
}
