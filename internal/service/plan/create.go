package plan

import (
	"context"
	"fmt"
	"strings"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// DayExerciseInput is one planned exercise within a day.
type DayExerciseInput struct {
	ExerciseID  int64
	Sets        int
	Reps        string
	RestSeconds int
}

// DayInput is one scheduled day within a plan-creation payload.
type DayInput struct {
	DayNumber     int
	DayName       string
	MuscleGroupID *int64
	Exercises     []DayExerciseInput
}

// CreateInput carries a full nested plan: header, days and their exercises.
type CreateInput struct {
	Name         string
	StartDate    string
	EndDate      *string
	Duration     *string
	TrainingType *string
	Split        *string
	Notes        *string
	Activate     bool
	Days         []DayInput
}

func (in *CreateInput) validate() error {
	var fieldErrs []domain.FieldError

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "name", Message: "is required"})
	}

	for i, day := range in.Days {
		if strings.TrimSpace(day.DayName) == "" {
			fieldErrs = append(fieldErrs, domain.FieldError{
				Field: fmt.Sprintf("days[%d].dayName", i), Message: "is required",
			})
		}
		if day.DayNumber <= 0 {
			fieldErrs = append(fieldErrs, domain.FieldError{
				Field: fmt.Sprintf("days[%d].dayNumber", i), Message: "must be a positive integer",
			})
		}
		for j, ex := range day.Exercises {
			if ex.ExerciseID <= 0 {
				fieldErrs = append(fieldErrs, domain.FieldError{
					Field: fmt.Sprintf("days[%d].exercises[%d].exerciseId", i, j), Message: "must be a positive integer",
				})
			}
			if ex.Sets <= 0 {
				fieldErrs = append(fieldErrs, domain.FieldError{
					Field: fmt.Sprintf("days[%d].exercises[%d].sets", i, j), Message: "must be a positive integer",
				})
			}
		}
	}

	if len(fieldErrs) > 0 {
		return domain.NewValidationErrors(fieldErrs)
	}
	return nil
}

// Create persists a nested plan in one transaction and returns it fully
// loaded. With Activate set, the user's other plans are deactivated first.
func (s *Service) Create(ctx context.Context, userID int64, in CreateInput) (*domain.WorkoutPlan, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	startDate, err := domain.NormalizeDate(in.StartDate)
	if err != nil {
		return nil, err
	}

	plan := &domain.WorkoutPlan{
		UserID:       userID,
		Name:         in.Name,
		StartDate:    startDate,
		Duration:     in.Duration,
		TrainingType: in.TrainingType,
		Split:        in.Split,
		Notes:        in.Notes,
		IsActive:     in.Activate,
	}
	if in.EndDate != nil {
		endDate, err := domain.ParseDate(*in.EndDate)
		if err != nil {
			return nil, domain.NewValidationError("endDate", "must be a valid date")
		}
		plan.EndDate = &endDate
	}

	var planID int64
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.plans.Create(ctx, plan)
		if err != nil {
			return err
		}
		planID = created.ID

		for _, dayIn := range in.Days {
			day, err := s.plans.CreateDay(ctx, &domain.WorkoutDay{
				PlanID:        created.ID,
				DayNumber:     dayIn.DayNumber,
				DayName:       strings.TrimSpace(dayIn.DayName),
				MuscleGroupID: dayIn.MuscleGroupID,
			})
			if err != nil {
				return err
			}

			for order, exIn := range dayIn.Exercises {
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
		}

		if in.Activate {
			return s.plans.Activate(ctx, userID, created.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("plan created", "user_id", userID, "plan_id", planID, "days", len(in.Days))

	return s.plans.GetFull(ctx, userID, planID)
}
