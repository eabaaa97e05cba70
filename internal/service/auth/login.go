package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// Login verifies credentials and returns a fresh token pair. Unknown user
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, in.Password) {
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}

	s.log.Info("user logged in", "user_id", user.ID)

	return s.issueTokens(user)
}
