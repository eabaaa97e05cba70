// Package auth implements registration, login and token refresh.
package auth

import (
	"context"
	"log/slog"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, username, passwordHash string, userType domain.UserType) (*domain.User, error)
}

// passwordHasher defines the password hashing interface needed by the auth service.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// jwtManager defines the token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(userID int64, role string) (string, error)
	GenerateRefreshToken(userID int64, role string) (string, error)
	ValidateToken(token, expectedType string) (int64, string, error)
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	hasher passwordHasher
	jwt    jwtManager
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, hasher passwordHasher, jwt jwtManager) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		hasher: hasher,
		jwt:    jwt,
	}
}

// Me returns the caller's profile.
func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
