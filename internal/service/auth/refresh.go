package auth

import (
	"context"
	"fmt"

	authpkg "github.com/kvolkov/gymtrack-backend/internal/auth"
	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// Refresh exchanges a valid refresh token for a new token pair. The user is
// re-read so role changes take effect on rotation.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	userID, _, err := s.jwt.ValidateToken(refreshToken, authpkg.TokenTypeRefresh)
	if err != nil {
		return nil, fmt.Errorf("validate refresh token: %w", domain.ErrUnauthorized)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return s.issueTokens(user)
}
