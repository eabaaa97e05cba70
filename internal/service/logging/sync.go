package logging

import (
	"context"
	"fmt"
	"time"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// SyncResult is returned to the client after reconciliation so it can patch
// its optimistic local state with canonical row ids.
type SyncResult struct {
	WorkoutLogID int64
	SavedAt      time.Time
	ExerciseLogs []domain.ExerciseLog
}

// SyncManualWorkout converges the persisted set rows of one workout log to
// exactly match the submitted view. Each submitted set either updates an
// existing row (addressed by id, or positionally by exercise and set number)
// or inserts a new one; every persisted row not covered by the submission is
// deleted. The whole operation runs in one transaction, so an invalid entry
// aborts with no partial writes.
func (s *Service) SyncManualWorkout(ctx context.Context, userID int64, in SyncInput) (*SyncResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(in.CompletedDate)
	if err != nil {
		return nil, err
	}

	var result SyncResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		logRow, err := s.resolveLog(ctx, userID, in, date)
		if err != nil {
			return err
		}

		kept, err := s.reconcileSets(ctx, logRow.ID, in.Sets)
		if err != nil {
			return err
		}

		if err := s.logs.DeleteSetsNotIn(ctx, logRow.ID, kept); err != nil {
			return err
		}

		canonical, err := s.logs.ListSets(ctx, logRow.ID)
		if err != nil {
			return err
		}

		result = SyncResult{
			WorkoutLogID: logRow.ID,
			SavedAt:      s.now(),
			ExerciseLogs: canonical,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("manual workout synced",
		"user_id", userID,
		"workout_log_id", result.WorkoutLogID,
		"sets", len(result.ExerciseLogs),
	)
	return &result, nil
}

// resolveLog finds or creates the parent log row. An explicit workoutLogId
// must resolve to a log owned by the caller. Planned logs keep their
// plan-derived name and date; only notes are updated.
func (s *Service) resolveLog(ctx context.Context, userID int64, in SyncInput, date time.Time) (*domain.WorkoutLog, error) {
	if in.WorkoutLogID != nil {
		logRow, err := s.logs.GetHeader(ctx, userID, *in.WorkoutLogID)
		if err != nil {
			return nil, err
		}

		upd := domain.WorkoutLogUpdate{Notes: in.Notes}
		if !logRow.IsPlanned() {
			upd.WorkoutName = &in.WorkoutName
			upd.CompletedDate = &date
		}
		return s.logs.UpdateHeader(ctx, logRow.ID, upd)
	}

	return s.logs.Create(ctx, &domain.WorkoutLog{
		UserID:        userID,
		WorkoutName:   &in.WorkoutName,
		CompletedDate: date,
		Notes:         in.Notes,
		IsManual:      true,
	})
}

// reconcileSets walks the submission in array order and returns the ids of
// all rows the client's view covers.
func (s *Service) reconcileSets(ctx context.Context, logID int64, sets []SyncSetInput) ([]int64, error) {
	existing, err := s.logs.ListSetIDs(ctx, logID)
	if err != nil {
		return nil, err
	}
	existingSet := make(map[int64]struct{}, len(existing))
	for _, id := range existing {
		existingSet[id] = struct{}{}
	}

	kept := make([]int64, 0, len(sets))
	for i, entry := range sets {
		row := domain.ExerciseLog{
			WorkoutLogID:  logID,
			ExerciseID:    entry.ExerciseID,
			SetNumber:     entry.SetNumber,
			RepsCompleted: entry.RepsCompleted,
			WeightKg:      entry.WeightKg,
			Notes:         entry.Notes,
		}

		if entry.ID != nil {
			if _, ok := existingSet[*entry.ID]; !ok {
				return nil, domain.NewValidationError(
					fmt.Sprintf("sets[%d].id", i),
					fmt.Sprintf("set %d does not belong to this workout", *entry.ID),
				)
			}
			if err := s.logs.UpdateSet(ctx, *entry.ID, &row); err != nil {
				return nil, err
			}
			kept = append(kept, *entry.ID)
			continue
		}

		// No id: match positionally, lowest row id first.
		matches, err := s.logs.FindByPosition(ctx, logID, entry.ExerciseID, entry.SetNumber)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			if err := s.logs.UpdateSet(ctx, matches[0], &row); err != nil {
				return nil, err
			}
			kept = append(kept, matches[0])
			continue
		}

		id, err := s.logs.InsertSet(ctx, &row)
		if err != nil {
			return nil, err
		}
		kept = append(kept, id)
	}
	return kept, nil
}
