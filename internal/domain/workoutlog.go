package domain

import "time"

// WorkoutLog is one performed workout session. Planned logs reference the
// scheduled WorkoutDay; manual logs have a nil WorkoutDayID and carry their
// own name. One log exists per (user, day, date) for planned workouts.
type WorkoutLog struct {
	ID            int64
	UserID        int64
	WorkoutDayID  *int64
	WorkoutName   *string
	CompletedDate time.Time
	Notes         *string
	IsManual      bool
	CreatedAt     time.Time

	WorkoutDay   *WorkoutDay
	ExerciseLogs []ExerciseLog
}

// IsPlanned reports whether the log derives from a scheduled workout day.
// Planned logs keep their plan-derived name and date; manual edits may only
// touch notes.
func (l *WorkoutLog) IsPlanned() bool { return l.WorkoutDayID != nil }

// DisplayName resolves the human-facing session title: the manual name if
// set, otherwise the scheduled day's name.
func (l *WorkoutLog) DisplayName() string {
	if l.WorkoutName != nil && *l.WorkoutName != "" {
		return *l.WorkoutName
	}
	if l.WorkoutDay != nil {
		return l.WorkoutDay.DayName
	}
	return "Workout"
}

// ExerciseLog is one performed set within a workout log. The
// (WorkoutLogID, ExerciseID, SetNumber) tuple is unique in practice but not
// constrained in the store; the reconciler collapses duplicates first-match-wins.
type ExerciseLog struct {
	ID            int64
	WorkoutLogID  int64
	ExerciseID    int64
	SetNumber     int
	RepsCompleted int
	WeightKg      float64
	Notes         *string
	CreatedAt     time.Time

	Exercise *Exercise
}

// Volume returns the set's training volume (reps × weight).
func (e *ExerciseLog) Volume() float64 {
	return float64(e.RepsCompleted) * e.WeightKg
}
