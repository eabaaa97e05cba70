package plan

import (
	"context"
	"fmt"
	"strings"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

func (in *DayInput) validate() error {
	var fieldErrs []domain.FieldError

	if strings.TrimSpace(in.DayName) == "" {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "dayName", Message: "is required"})
	}
	if in.DayNumber <= 0 {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "dayNumber", Message: "must be a positive integer"})
	}
	for j, ex := range in.Exercises {
		if ex.ExerciseID <= 0 {
			fieldErrs = append(fieldErrs, domain.FieldError{
				Field: fmt.Sprintf("exercises[%d].exerciseId", j), Message: "must be a positive integer",
			})
		}
		if ex.Sets <= 0 {
			fieldErrs = append(fieldErrs, domain.FieldError{
				Field: fmt.Sprintf("exercises[%d].sets", j), Message: "must be a positive integer",
			})
		}
	}

	if len(fieldErrs) > 0 {
		return domain.NewValidationErrors(fieldErrs)
	}
	return nil
}

func (in *DayExerciseInput) validate() error {
	var fieldErrs []domain.FieldError

	if in.ExerciseID <= 0 {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "exerciseId", Message: "must be a positive integer"})
	}
	if in.Sets <= 0 {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "sets", Message: "must be a positive integer"})
	}

	if len(fieldErrs) > 0 {
		return domain.NewValidationErrors(fieldErrs)
	}
	return nil
}

// AddDay appends one scheduled day, with any planned exercises, to an
// existing plan. The day and its exercises are written in one transaction
// and the created day is returned fully loaded.
func (s *Service) AddDay(ctx context.Context, userID, planID int64, in DayInput) (*domain.WorkoutDay, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	if _, err := s.plans.GetByID(ctx, userID, planID); err != nil {
		return nil, err
	}

	var dayID int64
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		day, err := s.plans.CreateDay(ctx, &domain.WorkoutDay{
			PlanID:        planID,
			DayNumber:     in.DayNumber,
			DayName:       strings.TrimSpace(in.DayName),
			MuscleGroupID: in.MuscleGroupID,
		})
		if err != nil {
			return err
		}
		dayID = day.ID

		for order, exIn := range in.Exercises {
			_, err := s.plans.CreateDayExercise(ctx, &domain.WorkoutDayExercise{
				WorkoutDayID: day.ID,
				ExerciseID:   exIn.ExerciseID,
				Sets:         exIn.Sets,
				Reps:         exIn.Reps,
				RestSeconds:  exIn.RestSeconds,
				OrderIndex:   order,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("plan day added", "user_id", userID, "plan_id", planID, "day_id", dayID)

	return s.plans.GetDayFull(ctx, userID, dayID)
}

// DeleteDay removes one scheduled day along with its planned exercises.
func (s *Service) DeleteDay(ctx context.Context, userID, dayID int64) error {
	return s.plans.DeleteDay(ctx, userID, dayID)
}

// AddDayExercise appends one planned exercise to the end of a day's
// schedule and returns the day fully loaded.
func (s *Service) AddDayExercise(ctx context.Context, userID, dayID int64, in DayExerciseInput) (*domain.WorkoutDay, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	if _, err := s.plans.GetDay(ctx, userID, dayID); err != nil {
		return nil, err
	}

	order, err := s.plans.NextDayExerciseOrder(ctx, dayID)
	if err != nil {
		return nil, err
	}

	_, err = s.plans.CreateDayExercise(ctx, &domain.WorkoutDayExercise{
		WorkoutDayID: dayID,
		ExerciseID:   in.ExerciseID,
		Sets:         in.Sets,
		Reps:         in.Reps,
		RestSeconds:  in.RestSeconds,
		OrderIndex:   order,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("plan day exercise added", "user_id", userID, "day_id", dayID, "exercise_id", in.ExerciseID)

	return s.plans.GetDayFull(ctx, userID, dayID)
}

// DeleteDayExercise removes one planned exercise from a day's schedule.
func (s *Service) DeleteDayExercise(ctx context.Context, userID, id int64) error {
	return s.plans.DeleteDayExercise(ctx, userID, id)
}
