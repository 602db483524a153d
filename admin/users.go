package admin

import (
	"context"
	"fmt"

	"github.com/Kariqs/amana-storefront/models"
)

type UserList struct {
	Users []models.User `json:"users"`
	Total int           `json:"total"`
}

func (s *Service) Users(ctx context.Context, token string, f UserFilter) (*UserList, error) {
	users, err := s.backend.ListUsers(ctx, token)
	if err != nil {
		return nil, err
	}
	return &UserList{Users: f.Apply(users), Total: len(users)}, nil
}

func (s *Service) UpdateUser(ctx context.Context, token, userID string, in models.UserUpdate, f UserFilter) (*UserList, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if in.Role == "" {
		in.Role = models.RoleUser
	}
	if err := s.check(in); err != nil {
		return nil, err
	}
	if err := s.backend.UpdateUser(ctx, token, userID, in); err != nil {
		return nil, err
	}
	return s.Users(ctx, token, f)
}

func (s *Service) DeleteUser(ctx context.Context, token, userID string, confirm bool, f UserFilter) (*UserList, error) {
	if !confirm {
		return nil, ErrNotConfirmed
	}
	if err := s.backend.DeleteUser(ctx, token, userID); err != nil {
		return nil, err
	}
	return s.Users(ctx, token, f)
}
