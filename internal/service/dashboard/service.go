// Package dashboard resolves "what should I train today": the active plan's
// scheduled day for the current date plus any log already started for it.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

type planRepo interface {
	GetActive(ctx context.Context, userID int64) (*domain.WorkoutPlan, error)
}

type logRepo interface {
	FindByDayAndDate(ctx context.Context, userID, dayID int64, date time.Time) (*domain.WorkoutLog, error)
	CountSets(ctx context.Context, logID int64) (int, error)
}

// Today is the dashboard payload: the active plan, the scheduled day for
// the date (nil on rest days or without an active plan), and the started
// log with its set count when one exists.
type Today struct {
	Plan     *domain.WorkoutPlan
	Day      *domain.WorkoutDay
	Log      *domain.WorkoutLog
	SetCount int
}

// Service implements the dashboard lookup.
type Service struct {
	log   *slog.Logger
	plans planRepo
	logs  logRepo
	now   func() time.Time
}

// NewService creates a new dashboard service.
func NewService(logger *slog.Logger, plans planRepo, logs logRepo) *Service {
	return &Service{
		log:   logger.With("service", "dashboard"),
		plans: plans,
		logs:  logs,
		now:   time.Now,
	}
}

// GetToday resolves the dashboard for a date. An empty date means today.
// The scheduled day is the one whose day number equals the count of days
// since the plan started, one-based. Dates before the start or past the
// last numbered day have no scheduled workout.
func (s *Service) GetToday(ctx context.Context, userID int64, date string) (*Today, error) {
	day, err := domain.NormalizeDate(date)
	if err != nil {
		return nil, err
	}

	plan, err := s.plans.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &Today{}, nil
		}
		return nil, err
	}

	result := &Today{Plan: plan}
	if len(plan.Days) == 0 {
		return result, nil
	}

	dayNumber := domain.DaysBetween(plan.StartDate, day) + 1
	if dayNumber < 1 {
		return result, nil
	}
	var scheduled *domain.WorkoutDay
	for i := range plan.Days {
		if plan.Days[i].DayNumber == dayNumber {
			scheduled = &plan.Days[i]
			break
		}
	}
	if scheduled == nil {
		return result, nil
	}
	result.Day = scheduled

	logRow, err := s.logs.FindByDayAndDate(ctx, userID, scheduled.ID, day)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return result, nil
		}
		return nil, err
	}
	result.Log = logRow

	count, err := s.logs.CountSets(ctx, logRow.ID)
	if err != nil {
		return nil, err
	}
	result.SetCount = count
	return result, nil
}
