package call

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestTruncate(t *testing.T) {
	five := []Summary{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"}}

	kept, truncated := Truncate(five, intPtr(3))
	require.Len(t, kept, 3)
	require.True(t, truncated)
	require.Equal(t, "1", kept[0].ID)
	require.Equal(t, "3", kept[2].ID)

	kept, truncated = Truncate(five[:2], intPtr(5))
	require.Len(t, kept, 2)
	require.False(t, truncated)

	kept, truncated = Truncate(five, nil)
	require.Len(t, kept, 5)
	require.False(t, truncated)

	kept, truncated = Truncate(five, intPtr(5))
	require.Len(t, kept, 5)
	require.False(t, truncated)

	kept, truncated = Truncate(five, intPtr(0))
	require.Empty(t, kept)
	require.True(t, truncated)

	kept, truncated = Truncate(nil, intPtr(0))
	require.Empty(t, kept)
	require.False(t, truncated)
}
