package logging

import (
	"context"
	"fmt"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// AddWorkoutSet upserts a single set into the log, used by the plan-based
// logging flow. If rows already exist for (exerciseId, setNumber), the
// lowest-id row is updated and any duplicates are removed; otherwise a new
// row is inserted.
func (s *Service) AddWorkoutSet(ctx context.Context, userID, logID int64, in SetInput) (*domain.ExerciseLog, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var setID int64
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		logRow, err := s.logs.GetHeader(ctx, userID, logID)
		if err != nil {
			return err
		}

		row := domain.ExerciseLog{
			WorkoutLogID:  logRow.ID,
			ExerciseID:    in.ExerciseID,
			SetNumber:     in.SetNumber,
			RepsCompleted: in.RepsCompleted,
			WeightKg:      in.WeightKg,
			Notes:         in.Notes,
		}

		matches, err := s.logs.FindByPosition(ctx, logRow.ID, in.ExerciseID, in.SetNumber)
		if err != nil {
			return err
		}

		switch {
		case len(matches) == 0:
			setID, err = s.logs.InsertSet(ctx, &row)
			return err
		default:
			setID = matches[0]
			if err := s.logs.UpdateSet(ctx, setID, &row); err != nil {
				return err
			}
			return s.logs.DeleteSetsByID(ctx, matches[1:])
		}
	})
	if err != nil {
		return nil, err
	}

	set, err := s.logs.GetSetOwned(ctx, userID, setID)
	if err != nil {
		return nil, fmt.Errorf("reload set: %w", err)
	}
	return set, nil
}

// UpdateSet applies a partial update to one set owned by the caller.
func (s *Service) UpdateSet(ctx context.Context, userID, setID int64, upd domain.ExerciseSetUpdate) (*domain.ExerciseLog, error) {
	if upd.RepsCompleted != nil && *upd.RepsCompleted <= 0 {
		return nil, domain.NewValidationError("repsCompleted", "must be a positive integer")
	}
	if upd.WeightKg != nil && *upd.WeightKg <= 0 {
		return nil, domain.NewValidationError("weightKg", "must be a positive number")
	}

	if _, err := s.logs.GetSetOwned(ctx, userID, setID); err != nil {
		return nil, err
	}
	if err := s.logs.UpdateSetPartial(ctx, setID, upd); err != nil {
		return nil, err
	}
	return s.logs.GetSetOwned(ctx, userID, setID)
}

// DeleteSet removes one set owned by the caller.
func (s *Service) DeleteSet(ctx context.Context, userID, setID int64) error {
	if _, err := s.logs.GetSetOwned(ctx, userID, setID); err != nil {
		return err
	}
	return s.logs.DeleteSet(ctx, setID)
}
