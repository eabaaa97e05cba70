package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// Register creates a new account and returns a fresh token pair.
// Usernames are unique; a duplicate yields domain.ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, in.Username, hash, domain.UserTypeUser)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("username %q: %w", in.Username, domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "user_id", user.ID, "username", user.Username)

	return s.issueTokens(user)
}

func (s *Service) issueTokens(user *domain.User) (*AuthResult, error) {
	access, err := s.jwt.GenerateAccessToken(user.ID, user.UserType.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refresh, err := s.jwt.GenerateRefreshToken(user.ID, user.UserType.String())
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}
	return &AuthResult{AccessToken: access, RefreshToken: refresh, User: user}, nil
}
