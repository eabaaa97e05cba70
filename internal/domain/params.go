package domain

import "time"

// WorkoutLogUpdate holds the optional fields of a partial log-header update.
// Nil means "leave unchanged".
type WorkoutLogUpdate struct {
	WorkoutName   *string
	CompletedDate *time.Time
	Notes         *string
	ClearNotes    bool
}

// ExerciseSetUpdate holds the optional fields of a partial set update.
type ExerciseSetUpdate struct {
	RepsCompleted *int
	WeightKg      *float64
	Notes         *string
}

// ExerciseProgressPoint is one recorded set of a given exercise on a given
// date, used to chart per-exercise progress.
type ExerciseProgressPoint struct {
	Date          time.Time
	WorkoutLogID  int64
	SetNumber     int
	RepsCompleted int
	WeightKg      float64
}

// OverallStats aggregates a user's lifetime training totals.
type OverallStats struct {
	TotalWorkouts int
	TotalSets     int
	TotalVolumeKg float64
	FirstWorkout  *time.Time
	LastWorkout   *time.Time
}

// ShareListFilter narrows the admin share listing. Nil and empty fields are
// ignored. Search matches the token prefix or the owner's username.
type ShareListFilter struct {
	UserID   *int64
	IsActive *bool
	Search   string
}

// ExerciseFilter narrows the exercise catalog listing. Zero-value fields
// are ignored.
type ExerciseFilter struct {
	MuscleGroupID *int64
	Search        string
}
