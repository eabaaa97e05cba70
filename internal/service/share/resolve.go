package share

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// SharedView is the read-only rendering of a share: the share itself, the
// owner's public profile and the aggregated history of the shared range.
type SharedView struct {
	Share   *domain.WorkoutShare
	History *domain.WorkoutHistory
}

// Resolve turns a token into its shared view. Unknown tokens are not found;
// revoked and expired shares are forbidden with distinct messages so the
// client can render the difference.
func (s *Service) Resolve(ctx context.Context, token uuid.UUID) (*SharedView, error) {
	share, err := s.shares.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if !share.IsActive {
		return nil, fmt.Errorf("share link has been revoked: %w", domain.ErrForbidden)
	}
	if share.IsExpired(s.now()) {
		return nil, fmt.Errorf("share link has expired: %w", domain.ErrForbidden)
	}

	logs, err := s.logs.ListByDateRange(ctx, share.UserID, share.FromDate, share.ToDate)
	if err != nil {
		return nil, err
	}

	history := domain.BuildWorkoutHistory(share.FromDate, share.ToDate, logs)
	return &SharedView{Share: share, History: history}, nil
}
