package share

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// CreateInput carries the fields of a share-creation request.
type CreateInput struct {
	FromDate      string
	ToDate        string
	ExpiresInDays *int
}

// CreateResult is a share plus lifecycle flags. Reused is set whenever an
// existing share for the range came back instead of a new token; Renewed is
// additionally set when that share was revoked or expired and had to be
// reactivated with a fresh expiry.
type CreateResult struct {
	Share   *domain.WorkoutShare
	URL     string
	Reused  bool
	Renewed bool
}

// CreateShare issues a share link for a date range. Re-requests for the same
// normalized range reuse or renew the existing token instead of minting a
// new one; only genuinely new tokens count against the daily quota.
func (s *Service) CreateShare(ctx context.Context, userID int64, in CreateInput) (*CreateResult, error) {
	from, err := domain.ParseDate(in.FromDate)
	if err != nil {
		return nil, domain.NewValidationError("fromDate", "must be a valid date")
	}
	to, err := domain.ParseDate(in.ToDate)
	if err != nil {
		return nil, domain.NewValidationError("toDate", "must be a valid date")
	}
	if to.Before(from) {
		return nil, domain.NewValidationError("toDate", "must not precede fromDate")
	}
	if in.ExpiresInDays != nil && *in.ExpiresInDays <= 0 {
		return nil, domain.NewValidationError("expiresInDays", "must be a positive integer")
	}

	now := s.now()
	var expiresAt *time.Time
	if in.ExpiresInDays != nil {
		t := now.AddDate(0, 0, *in.ExpiresInDays)
		expiresAt = &t
	}

	var result CreateResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.shares.FindLatestByRange(ctx, userID, from, to)
		switch {
		case err == nil:
			if existing.IsUsable(now) {
				result = CreateResult{Share: existing, Reused: true}
				return nil
			}
			renewed, err := s.shares.Renew(ctx, existing.ID, expiresAt)
			if err != nil {
				return err
			}
			result = CreateResult{Share: renewed, Reused: true, Renewed: true}
			return nil
		case errors.Is(err, domain.ErrNotFound):
			// fall through to creation
		default:
			return err
		}

		created, err := s.shares.CountCreatedSince(ctx, userID, domain.Midnight(now))
		if err != nil {
			return err
		}
		if created >= s.cfg.DailyLimit {
			return fmt.Errorf("share creation quota of %d per day reached: %w",
				s.cfg.DailyLimit, domain.ErrRateLimited)
		}

		share, err := s.shares.Create(ctx, &domain.WorkoutShare{
			Token:     uuid.New(),
			UserID:    userID,
			FromDate:  from,
			ToDate:    to,
			ExpiresAt: expiresAt,
		})
		if err != nil {
			return err
		}
		result = CreateResult{Share: share}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.URL = s.shareURL(result.Share.Token)
	if !result.Reused {
		s.log.Info("share link issued",
			"user_id", userID,
			"share_id", result.Share.ID,
			"renewed", result.Renewed,
		)
	}
	return &result, nil
}

func (s *Service) shareURL(token uuid.UUID) string {
	return fmt.Sprintf("%s/share/%s", s.cfg.FrontendURL, token)
}
