package share

import (
	"context"

	"github.com/google/uuid"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// ListShares returns shares for the admin surface.
func (s *Service) ListShares(ctx context.Context, filter domain.ShareListFilter) ([]domain.WorkoutShare, error) {
	return s.shares.List(ctx, filter)
}

// Revoke deactivates the share behind token. History data is untouched.
func (s *Service) Revoke(ctx context.Context, token uuid.UUID) error {
	share, err := s.shares.GetByToken(ctx, token)
	if err != nil {
		return err
	}
	if err := s.shares.SetActive(ctx, share.ID, false); err != nil {
		return err
	}
	s.log.Info("share revoked", "share_id", share.ID, "user_id", share.UserID)
	return nil
}

// Activate reactivates a revoked share. An expired share stays expired until
// its owner renews it.
func (s *Service) Activate(ctx context.Context, token uuid.UUID) error {
	share, err := s.shares.GetByToken(ctx, token)
	if err != nil {
		return err
	}
	return s.shares.SetActive(ctx, share.ID, true)
}

// Delete removes the share row permanently.
func (s *Service) Delete(ctx context.Context, token uuid.UUID) error {
	share, err := s.shares.GetByToken(ctx, token)
	if err != nil {
		return err
	}
	if err := s.shares.Delete(ctx, share.ID); err != nil {
		return err
	}
	s.log.Info("share deleted", "share_id", share.ID, "user_id", share.UserID)
	return nil
}
