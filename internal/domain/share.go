package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutShare is a tokenized, time-bounded, revocable public link exposing
// one user's workout history read-only for [FromDate, ToDate].
type WorkoutShare struct {
	ID        int64
	Token     uuid.UUID
	UserID    int64
	FromDate  time.Time
	ToDate    time.Time
	ExpiresAt *time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	Owner *PublicProfile
}

// IsExpired reports whether the share has passed its expiry. Shares without
// an ExpiresAt never expire.
func (s *WorkoutShare) IsExpired(now time.Time) bool {
	return s.ExpiresAt != nil && s.ExpiresAt.Before(now)
}

// IsUsable reports whether the share resolves for public viewing: active and
// not expired.
func (s *WorkoutShare) IsUsable(now time.Time) bool {
	return s.IsActive && !s.IsExpired(now)
}
