// Package logging implements workout-log business logic: the manual-sync
// reconciler, the single-set upsert used by plan-based logging, and log CRUD.
package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type logRepo interface {
	GetHeader(ctx context.Context, userID, id int64) (*domain.WorkoutLog, error)
	GetWithDay(ctx context.Context, userID, id int64) (*domain.WorkoutLog, error)
	FindByDayAndDate(ctx context.Context, userID, dayID int64, date time.Time) (*domain.WorkoutLog, error)
	Create(ctx context.Context, l *domain.WorkoutLog) (*domain.WorkoutLog, error)
	UpdateHeader(ctx context.Context, id int64, upd domain.WorkoutLogUpdate) (*domain.WorkoutLog, error)
	Delete(ctx context.Context, userID, id int64) error

	ListSetIDs(ctx context.Context, logID int64) ([]int64, error)
	FindByPosition(ctx context.Context, logID, exerciseID int64, setNumber int) ([]int64, error)
	InsertSet(ctx context.Context, s *domain.ExerciseLog) (int64, error)
	UpdateSet(ctx context.Context, id int64, s *domain.ExerciseLog) error
	UpdateSetPartial(ctx context.Context, id int64, upd domain.ExerciseSetUpdate) error
	DeleteSetsNotIn(ctx context.Context, logID int64, kept []int64) error
	DeleteSetsByID(ctx context.Context, ids []int64) error
	DeleteSet(ctx context.Context, id int64) error
	GetSetOwned(ctx context.Context, userID, setID int64) (*domain.ExerciseLog, error)
	ListSets(ctx context.Context, logID int64) ([]domain.ExerciseLog, error)
}

type planRepo interface {
	GetDay(ctx context.Context, userID, dayID int64) (*domain.WorkoutDay, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the workout-logging business logic.
type Service struct {
	log   *slog.Logger
	logs  logRepo
	plans planRepo
	tx    txManager
	now   func() time.Time
}

// NewService creates a new logging service.
func NewService(logger *slog.Logger, logs logRepo, plans planRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "logging"),
		logs:  logs,
		plans: plans,
		tx:    tx,
		now:   time.Now,
	}
}
