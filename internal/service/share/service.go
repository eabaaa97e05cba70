// Package share implements the share-link lifecycle: token issuance with
// reuse and renewal, daily creation quotas, public resolution and the admin
// state transitions.
package share

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kvolkov/gymtrack-backend/internal/config"
	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type shareRepo interface {
	Create(ctx context.Context, s *domain.WorkoutShare) (*domain.WorkoutShare, error)
	FindLatestByRange(ctx context.Context, userID int64, from, to time.Time) (*domain.WorkoutShare, error)
	Renew(ctx context.Context, id int64, expiresAt *time.Time) (*domain.WorkoutShare, error)
	GetByToken(ctx context.Context, token uuid.UUID) (*domain.WorkoutShare, error)
	CountCreatedSince(ctx context.Context, userID int64, since time.Time) (int, error)
	List(ctx context.Context, filter domain.ShareListFilter) ([]domain.WorkoutShare, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

type logRepo interface {
	ListByDateRange(ctx context.Context, userID int64, from, to time.Time) ([]domain.WorkoutLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements share-link operations.
type Service struct {
	log    *slog.Logger
	shares shareRepo
	logs   logRepo
	tx     txManager
	cfg    config.ShareConfig
	now    func() time.Time
}

// NewService creates a new share service.
func NewService(logger *slog.Logger, shares shareRepo, logs logRepo, tx txManager, cfg config.ShareConfig) *Service {
	return &Service{
		log:    logger.With("service", "share"),
		shares: shares,
		logs:   logs,
		tx:     tx,
		cfg:    cfg,
		now:    time.Now,
	}
}
