package domain

import (
	"math"
	"time"
)

// WorkoutHistory is the aggregated view of a date range: per-workout
// timelines with sets grouped by exercise, plus range-wide totals and the
// volume split by muscle group. It backs both the history endpoint and the
// public shared view.
type WorkoutHistory struct {
	FromDate            time.Time
	ToDate              time.Time
	TotalWorkouts       int
	TotalSets           int
	TotalVolumeKg       float64
	VolumeByMuscleGroup map[string]float64
	Workouts            []HistoryWorkout
}

// HistoryWorkout is one session on the timeline. MuscleGroup is the
// scheduled day's group, or "General" for manual sessions.
type HistoryWorkout struct {
	Date        time.Time
	WorkoutName string
	MuscleGroup string
	Notes       *string
	Exercises   []HistoryExercise
}

// HistoryExercise groups a session's sets under one exercise.
type HistoryExercise struct {
	ExerciseID   int64
	ExerciseName string
	MuscleGroup  string
	Sets         []HistorySet
}

// HistorySet is one recorded set within a grouped exercise.
type HistorySet struct {
	SetNumber int
	Reps      int
	WeightKg  float64
	Notes     *string
}

// BuildWorkoutHistory aggregates full logs into a WorkoutHistory. Volume is
// Σ reps×weight; totals are rounded to two decimals. The muscle-group split
// is keyed by each exercise's group name, "Unknown" when the exercise rows
// lack one.
func BuildWorkoutHistory(from, to time.Time, logs []WorkoutLog) *WorkoutHistory {
	h := &WorkoutHistory{
		FromDate:            from,
		ToDate:              to,
		TotalWorkouts:       len(logs),
		VolumeByMuscleGroup: make(map[string]float64),
		Workouts:            make([]HistoryWorkout, 0, len(logs)),
	}

	var volume float64
	for i := range logs {
		l := &logs[i]

		w := HistoryWorkout{
			Date:        l.CompletedDate,
			WorkoutName: l.DisplayName(),
			MuscleGroup: "General",
			Notes:       l.Notes,
		}
		if l.WorkoutDay != nil && l.WorkoutDay.MuscleGroup != nil {
			w.MuscleGroup = l.WorkoutDay.MuscleGroup.Name
		}

		byExercise := make(map[int64]int)
		for j := range l.ExerciseLogs {
			set := &l.ExerciseLogs[j]
			h.TotalSets++
			volume += set.Volume()

			name, group := "Unknown", "Unknown"
			if set.Exercise != nil {
				name = set.Exercise.Name
				if set.Exercise.MuscleGroup != nil {
					group = set.Exercise.MuscleGroup.Name
				}
			}
			h.VolumeByMuscleGroup[group] = round2(h.VolumeByMuscleGroup[group] + set.Volume())

			idx, ok := byExercise[set.ExerciseID]
			if !ok {
				idx = len(w.Exercises)
				byExercise[set.ExerciseID] = idx
				w.Exercises = append(w.Exercises, HistoryExercise{
					ExerciseID:   set.ExerciseID,
					ExerciseName: name,
					MuscleGroup:  group,
				})
			}
			w.Exercises[idx].Sets = append(w.Exercises[idx].Sets, HistorySet{
				SetNumber: set.SetNumber,
				Reps:      set.RepsCompleted,
				WeightKg:  set.WeightKg,
				Notes:     set.Notes,
			})
		}

		h.Workouts = append(h.Workouts, w)
	}

	h.TotalVolumeKg = round2(volume)
	return h
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
