package service

import (
	"context"

	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/store"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// UpdateProfile mutates the caller's own name and bio. The user id comes
// from the authenticated identity, never from the request payload.
func (s *UserService) UpdateProfile(ctx context.Context, userID, name, bio string) (domain.User, error) {
	return s.Store.Users().UpdateProfile(ctx, userID, name, bio)
}
