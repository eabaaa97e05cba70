// Package progress implements history timelines, per-exercise progress
// charts, lifetime stats and training streaks.
package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

type logRepo interface {
	ListByDateRange(ctx context.Context, userID int64, from, to time.Time) ([]domain.WorkoutLog, error)
	ListExercisePoints(ctx context.Context, userID, exerciseID int64, from, to *time.Time) ([]domain.ExerciseProgressPoint, error)
	ListCompletedDates(ctx context.Context, userID int64) ([]time.Time, error)
	GetOverallStats(ctx context.Context, userID int64) (*domain.OverallStats, error)
}

type exerciseRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)
}

// Service implements progress queries.
type Service struct {
	log       *slog.Logger
	logs      logRepo
	exercises exerciseRepo
	now       func() time.Time
}

// NewService creates a new progress service.
func NewService(logger *slog.Logger, logs logRepo, exercises exerciseRepo) *Service {
	return &Service{
		log:       logger.With("service", "progress"),
		logs:      logs,
		exercises: exercises,
		now:       time.Now,
	}
}

// maxHistoryRangeDays caps the history window a single request may cover.
const maxHistoryRangeDays = 365

// History aggregates the user's workouts over [from, to]: the session
// timeline with sets grouped by exercise, range totals and the volume split
// by muscle group. Both bounds are required and the window is capped at one
// year.
func (s *Service) History(ctx context.Context, userID int64, from, to string) (*domain.WorkoutHistory, error) {
	if from == "" {
		return nil, domain.NewValidationError("from", "required")
	}
	if to == "" {
		return nil, domain.NewValidationError("to", "required")
	}
	fromT, err := domain.ParseDate(from)
	if err != nil {
		return nil, domain.NewValidationError("from", "must be a valid date")
	}
	toT, err := domain.ParseDate(to)
	if err != nil {
		return nil, domain.NewValidationError("to", "must be a valid date")
	}
	if toT.Before(fromT) {
		return nil, domain.NewValidationError("from", "must not be after to")
	}
	if domain.DaysBetween(fromT, toT) > maxHistoryRangeDays {
		return nil, domain.NewValidationError("to", "date range cannot exceed 365 days")
	}

	logs, err := s.logs.ListByDateRange(ctx, userID, fromT, toT)
	if err != nil {
		return nil, err
	}
	return domain.BuildWorkoutHistory(fromT, toT, logs), nil
}

// ExerciseProgress returns the chart points for one exercise together with
// the exercise itself. from and to are optional date strings.
func (s *Service) ExerciseProgress(ctx context.Context, userID, exerciseID int64, from, to string) (*domain.Exercise, []domain.ExerciseProgressPoint, error) {
	exercise, err := s.exercises.GetByID(ctx, exerciseID)
	if err != nil {
		return nil, nil, err
	}

	var fromT, toT *time.Time
	if from != "" {
		t, err := domain.ParseDate(from)
		if err != nil {
			return nil, nil, domain.NewValidationError("from", "must be a valid date")
		}
		fromT = &t
	}
	if to != "" {
		t, err := domain.ParseDate(to)
		if err != nil {
			return nil, nil, domain.NewValidationError("to", "must be a valid date")
		}
		toT = &t
	}

	points, err := s.logs.ListExercisePoints(ctx, userID, exerciseID, fromT, toT)
	if err != nil {
		return nil, nil, err
	}
	return exercise, points, nil
}

// Overall returns lifetime training totals.
func (s *Service) Overall(ctx context.Context, userID int64) (*domain.OverallStats, error) {
	return s.logs.GetOverallStats(ctx, userID)
}

// Streak returns the user's current consecutive-day training streak ending
// today or yesterday. A streak broken for a full day is zero.
func (s *Service) Streak(ctx context.Context, userID int64) (int, error) {
	dates, err := s.logs.ListCompletedDates(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, nil
	}

	today := domain.Midnight(s.now())
	gap := domain.DaysBetween(domain.Midnight(dates[0]), today)
	if gap > 1 {
		return 0, nil
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		if domain.DaysBetween(domain.Midnight(dates[i]), domain.Midnight(dates[i-1])) != 1 {
			break
		}
		streak++
	}
	return streak, nil
}
