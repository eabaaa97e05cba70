package logging

import (
	"context"
	"errors"
	"strings"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// StartInput carries the fields for starting a workout log.
type StartInput struct {
	WorkoutDayID *int64
	WorkoutName  *string
	Date         string
	Notes        *string
}

// StartWorkout finds or creates the log for a scheduled day on a date, or
// creates a manual log when no day is given. Starting the same planned day
// twice on one date returns the existing log.
func (s *Service) StartWorkout(ctx context.Context, userID int64, in StartInput) (*domain.WorkoutLog, error) {
	date, err := domain.NormalizeDate(in.Date)
	if err != nil {
		return nil, err
	}

	if in.WorkoutDayID == nil {
		name := "Workout"
		if in.WorkoutName != nil && strings.TrimSpace(*in.WorkoutName) != "" {
			name = strings.TrimSpace(*in.WorkoutName)
		}
		return s.logs.Create(ctx, &domain.WorkoutLog{
			UserID:        userID,
			WorkoutName:   &name,
			CompletedDate: date,
			Notes:         in.Notes,
			IsManual:      true,
		})
	}

	day, err := s.plans.GetDay(ctx, userID, *in.WorkoutDayID)
	if err != nil {
		return nil, err
	}

	existing, err := s.logs.FindByDayAndDate(ctx, userID, day.ID, date)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	return s.logs.Create(ctx, &domain.WorkoutLog{
		UserID:        userID,
		WorkoutDayID:  &day.ID,
		WorkoutName:   &day.DayName,
		CompletedDate: date,
		Notes:         in.Notes,
		IsManual:      false,
	})
}

// GetLog returns one log with schedule context and canonical set rows.
func (s *Service) GetLog(ctx context.Context, userID, id int64) (*domain.WorkoutLog, error) {
	return s.logs.GetWithDay(ctx, userID, id)
}

// UpdateLog applies a partial header update. Planned logs keep their
// plan-derived name and date; only notes may change.
func (s *Service) UpdateLog(ctx context.Context, userID, id int64, upd domain.WorkoutLogUpdate) (*domain.WorkoutLog, error) {
	logRow, err := s.logs.GetHeader(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if logRow.IsPlanned() {
		upd.WorkoutName = nil
		upd.CompletedDate = nil
	}
	if upd.WorkoutName != nil {
		name := strings.TrimSpace(*upd.WorkoutName)
		if name == "" {
			return nil, domain.NewValidationError("workoutName", "must not be empty")
		}
		upd.WorkoutName = &name
	}

	return s.logs.UpdateHeader(ctx, id, upd)
}

// CompleteSummary is what finishing a workout reports back.
type CompleteSummary struct {
	Log      *domain.WorkoutLog
	SetCount int
}

// CompleteWorkout stamps optional session notes on a log and returns the
// header with the number of recorded sets.
func (s *Service) CompleteWorkout(ctx context.Context, userID, id int64, notes *string) (*CompleteSummary, error) {
	logRow, err := s.logs.GetHeader(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		upd := domain.WorkoutLogUpdate{}
		if trimmed == "" {
			upd.ClearNotes = true
		} else {
			upd.Notes = &trimmed
		}
		logRow, err = s.logs.UpdateHeader(ctx, id, upd)
		if err != nil {
			return nil, err
		}
	}

	setIDs, err := s.logs.ListSetIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info("workout completed", "user_id", userID, "workout_log_id", id, "sets", len(setIDs))

	return &CompleteSummary{Log: logRow, SetCount: len(setIDs)}, nil
}

// DeleteLog removes a log and its set rows.
func (s *Service) DeleteLog(ctx context.Context, userID, id int64) error {
	if err := s.logs.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.log.Info("workout log deleted", "user_id", userID, "workout_log_id", id)
	return nil
}
