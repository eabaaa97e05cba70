package domain

import "time"

// WorkoutPlan is a user's training program: an ordered sequence of workout
// days starting at StartDate. At most one plan per user is active.
type WorkoutPlan struct {
	ID           int64
	UserID       int64
	Name         string
	StartDate    time.Time
	EndDate      *time.Time
	Duration     *string
	TrainingType *string
	Split        *string
	Notes        *string
	IsActive     bool
	CreatedAt    time.Time

	Days []WorkoutDay
}

// WorkoutDay is one scheduled day within a plan.
type WorkoutDay struct {
	ID            int64
	PlanID        int64
	DayNumber     int
	DayName       string
	MuscleGroupID *int64

	MuscleGroup *MuscleGroup
	Exercises   []WorkoutDayExercise
}

// WorkoutDayExercise is a planned exercise within a workout day, with target
// sets/reps and rest. Reps is free text ("8-12", "30s") per the planning UI.
type WorkoutDayExercise struct {
	ID           int64
	WorkoutDayID int64
	ExerciseID   int64
	Sets         int
	Reps         string
	RestSeconds  int
	OrderIndex   int

	Exercise *Exercise
}
