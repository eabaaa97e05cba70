// Package plan implements workout-plan management: nested plan creation,
// activation and schedule lookups.
package plan

import (
	"context"
	"log/slog"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

type planRepo interface {
	GetByID(ctx context.Context, userID, id int64) (*domain.WorkoutPlan, error)
	GetFull(ctx context.Context, userID, id int64) (*domain.WorkoutPlan, error)
	List(ctx context.Context, userID int64) ([]domain.WorkoutPlan, error)
	GetActive(ctx context.Context, userID int64) (*domain.WorkoutPlan, error)
	Create(ctx context.Context, p *domain.WorkoutPlan) (*domain.WorkoutPlan, error)
	CreateDay(ctx context.Context, d *domain.WorkoutDay) (*domain.WorkoutDay, error)
	CreateDayExercise(ctx context.Context, e *domain.WorkoutDayExercise) (int64, error)
	GetDay(ctx context.Context, userID, dayID int64) (*domain.WorkoutDay, error)
	GetDayFull(ctx context.Context, userID, dayID int64) (*domain.WorkoutDay, error)
	DeleteDay(ctx context.Context, userID, dayID int64) error
	DeleteDayExercise(ctx context.Context, userID, id int64) error
	NextDayExerciseOrder(ctx context.Context, dayID int64) (int, error)
	Activate(ctx context.Context, userID, id int64) error
	Delete(ctx context.Context, userID, id int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements workout-plan operations.
type Service struct {
	log   *slog.Logger
	plans planRepo
	tx    txManager
}

// NewService creates a new plan service.
func NewService(logger *slog.Logger, plans planRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "plan"),
		plans: plans,
		tx:    tx,
	}
}

// List returns the user's plan headers, newest first.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.WorkoutPlan, error) {
	return s.plans.List(ctx, userID)
}

// Get returns one plan with its days and planned exercises.
func (s *Service) Get(ctx context.Context, userID, id int64) (*domain.WorkoutPlan, error) {
	return s.plans.GetFull(ctx, userID, id)
}

// GetActive returns the user's active plan with its full schedule.
func (s *Service) GetActive(ctx context.Context, userID int64) (*domain.WorkoutPlan, error) {
	return s.plans.GetActive(ctx, userID)
}

// GetDay returns one scheduled day with its planned exercises.
func (s *Service) GetDay(ctx context.Context, userID, dayID int64) (*domain.WorkoutDay, error) {
	return s.plans.GetDayFull(ctx, userID, dayID)
}

// Activate marks the plan active, deactivating the user's other plans, as
// one transaction.
func (s *Service) Activate(ctx context.Context, userID, id int64) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.plans.Activate(ctx, userID, id)
	})
	if err != nil {
		return err
	}
	s.log.Info("plan activated", "user_id", userID, "plan_id", id)
	return nil
}

// Delete removes a plan with its days and planned exercises.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	return s.plans.Delete(ctx, userID, id)
}
