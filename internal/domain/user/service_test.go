package user

import (
	"context"
	"testing"

	"github.com/ganot/gong-mcp/internal/gong"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiMock struct {
	mock.Mock
}

func (m *apiMock) ListUsers(ctx context.Context, cursor string) (*gong.UsersResponse, error) {
	args := m.Called(ctx, cursor)
	if resp, ok := args.Get(0).(*gong.UsersResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestServiceList(t *testing.T) {
	ctx := context.Background()
	api := &apiMock{}
	api.On("ListUsers", ctx, "").Return(&gong.UsersResponse{
		Records: gong.Records{Cursor: "page2"},
		Users: []gong.User{
			{ID: strPtr("u1"), EmailAddress: strPtr("ana@example.com"), FirstName: strPtr("Ana"), LastName: strPtr("Lopez"), Active: boolPtr(true)},
			{ID: strPtr("u2")},
		},
	}, nil)

	svc := NewService(api, nil)
	dir, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, 2, dir.Count)
	require.Equal(t, "page2", dir.NextCursor)
	require.Equal(t, "ana@example.com", dir.Users[0].Email)
	require.True(t, dir.Users[0].Active)
	require.Empty(t, dir.Users[1].Email)
	require.False(t, dir.Users[1].Active)
}

func TestServiceList_EmptyWorkspace(t *testing.T) {
	ctx := context.Background()
	api := &apiMock{}
	api.On("ListUsers", ctx, "").Return(&gong.UsersResponse{}, nil)

	svc := NewService(api, nil)
	dir, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.NotNil(t, dir.Users)
	require.Zero(t, dir.Count)
	require.Empty(t, dir.NextCursor)
}

func TestServiceList_UpstreamError(t *testing.T) {
	ctx := context.Background()
	api := &apiMock{}
	api.On("ListUsers", ctx, "").Return(nil, gong.ErrUnauthorized)

	svc := NewService(api, nil)
	_, err := svc.List(ctx, "")
	require.ErrorIs(t, err, gong.ErrUnauthorized)
}
