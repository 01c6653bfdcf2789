package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ganot/gong-mcp/internal/gong"
)

// API is the slice of the Gong client the user service needs.
type API interface {
	ListUsers(ctx context.Context, cursor string) (*gong.UsersResponse, error)
}

// Service resolves the user directory against the upstream API.
type Service struct {
	api    API
	logger *slog.Logger
}

// NewService creates a new user service.
func NewService(api API, logger *slog.Logger) *Service {
	return &Service{api: api, logger: logger}
}

// List fetches one page of workspace users. An empty workspace is a valid
// empty directory.
func (s *Service) List(ctx context.Context, cursor string) (*Directory, error) {
	resp, err := s.api.ListUsers(ctx, cursor)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	dir := &Directory{
		Users:      make([]Record, 0, len(resp.Users)),
		NextCursor: resp.Records.Cursor,
	}
	for _, u := range resp.Users {
		dir.Users = append(dir.Users, shapeUser(u))
	}
	dir.Count = len(dir.Users)

	if s.logger != nil {
		s.logger.Debug("users listed", "count", dir.Count)
	}
	return dir, nil
}

func shapeUser(u gong.User) Record {
	rec := Record{}
	if u.ID != nil {
		rec.ID = *u.ID
	}
	if u.EmailAddress != nil {
		rec.Email = *u.EmailAddress
	}
	if u.FirstName != nil {
		rec.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		rec.LastName = *u.LastName
	}
	if u.Active != nil {
		rec.Active = *u.Active
	}
	return rec
}
