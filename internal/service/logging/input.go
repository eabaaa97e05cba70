package logging

import (
	"fmt"
	"strings"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// SyncSetInput is one submitted set within a manual-sync payload. ID is nil
// for sets the client has not yet resynced.
type SyncSetInput struct {
	ID            *int64
	ExerciseID    int64
	SetNumber     int
	RepsCompleted int
	WeightKg      float64
	Notes         *string
}

// SyncInput is the full manual-sync payload: the client's current view of
// one workout's sets.
type SyncInput struct {
	WorkoutLogID  *int64
	WorkoutName   string
	CompletedDate string
	Notes         *string
	Sets          []SyncSetInput
}

// validate rejects the whole batch if any entry is malformed, citing the
// offending index.
func (in *SyncInput) validate() error {
	var fieldErrs []domain.FieldError

	in.WorkoutName = strings.TrimSpace(in.WorkoutName)
	if in.WorkoutName == "" {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "workoutName", Message: "is required"})
	}
	if strings.TrimSpace(in.CompletedDate) == "" {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "completedDate", Message: "is required"})
	}

	for i := range in.Sets {
		fieldErrs = append(fieldErrs, validateSetEntry(fmt.Sprintf("sets[%d]", i), &in.Sets[i])...)
	}

	if len(fieldErrs) > 0 {
		return domain.NewValidationErrors(fieldErrs)
	}
	return nil
}

// SetInput is a single-set upsert payload.
type SetInput struct {
	ExerciseID    int64
	SetNumber     int
	RepsCompleted int
	WeightKg      float64
	Notes         *string
}

func (in *SetInput) validate() error {
	entry := SyncSetInput{
		ExerciseID:    in.ExerciseID,
		SetNumber:     in.SetNumber,
		RepsCompleted: in.RepsCompleted,
		WeightKg:      in.WeightKg,
	}
	if fieldErrs := validateSetEntry("set", &entry); len(fieldErrs) > 0 {
		return domain.NewValidationErrors(fieldErrs)
	}
	return nil
}

func validateSetEntry(prefix string, e *SyncSetInput) []domain.FieldError {
	var errs []domain.FieldError

	if e.ID != nil && *e.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: prefix + ".id", Message: "must be a positive integer"})
	}
	if e.ExerciseID <= 0 {
		errs = append(errs, domain.FieldError{Field: prefix + ".exerciseId", Message: "must be a positive integer"})
	}
	if e.SetNumber <= 0 {
		errs = append(errs, domain.FieldError{Field: prefix + ".setNumber", Message: "must be a positive integer"})
	}
	if e.RepsCompleted <= 0 {
		errs = append(errs, domain.FieldError{Field: prefix + ".repsCompleted", Message: "must be a positive integer"})
	}
	if e.WeightKg <= 0 {
		errs = append(errs, domain.FieldError{Field: prefix + ".weightKg", Message: "must be a positive number"})
	}
	return errs
}
