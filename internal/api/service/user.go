package service

import (
	"context"

	"github.com/certmint/certmint/internal/api/domain"
	"github.com/certmint/certmint/internal/api/store"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// ListUsers returns every account, newest first. Callers are expected to
// expose only the password-free projection.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}
