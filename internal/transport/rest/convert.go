package rest

import (
	"time"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

const dateLayout = "2006-01-02"

type muscleGroupResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type exerciseResponse struct {
	ID            int64                `json:"id"`
	MuscleGroupID int64                `json:"muscleGroupId"`
	Name          string               `json:"name"`
	Description   *string              `json:"description,omitempty"`
	Steps         *string              `json:"steps,omitempty"`
	VideoURL      *string              `json:"videoUrl,omitempty"`
	MuscleGroup   *muscleGroupResponse `json:"muscleGroup,omitempty"`
}

type exerciseLogResponse struct {
	ID            int64             `json:"id"`
	WorkoutLogID  int64             `json:"workoutLogId"`
	ExerciseID    int64             `json:"exerciseId"`
	SetNumber     int               `json:"setNumber"`
	RepsCompleted int               `json:"repsCompleted"`
	WeightKg      float64           `json:"weightKg"`
	Notes         *string           `json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	Exercise      *exerciseResponse `json:"exercise,omitempty"`
}

type workoutDayExerciseResponse struct {
	ID          int64             `json:"id"`
	ExerciseID  int64             `json:"exerciseId"`
	Sets        int               `json:"sets"`
	Reps        string            `json:"reps"`
	RestSeconds int               `json:"restSeconds"`
	OrderIndex  int               `json:"orderIndex"`
	Exercise    *exerciseResponse `json:"exercise,omitempty"`
}

type workoutDayResponse struct {
	ID            int64                        `json:"id"`
	PlanID        int64                        `json:"planId"`
	DayNumber     int                          `json:"dayNumber"`
	DayName       string                       `json:"dayName"`
	MuscleGroupID *int64                       `json:"muscleGroupId,omitempty"`
	MuscleGroup   *muscleGroupResponse         `json:"muscleGroup,omitempty"`
	Exercises     []workoutDayExerciseResponse `json:"exercises,omitempty"`
}

type workoutLogResponse struct {
	ID            int64                 `json:"id"`
	WorkoutDayID  *int64                `json:"workoutDayId,omitempty"`
	WorkoutName   *string               `json:"workoutName,omitempty"`
	CompletedDate string                `json:"completedDate"`
	Notes         *string               `json:"notes,omitempty"`
	IsManual      bool                  `json:"isManual"`
	CreatedAt     time.Time             `json:"createdAt"`
	WorkoutDay    *workoutDayResponse   `json:"workoutDay,omitempty"`
	ExerciseLogs  []exerciseLogResponse `json:"exerciseLogs,omitempty"`
}

func toMuscleGroupResponse(mg *domain.MuscleGroup) *muscleGroupResponse {
	if mg == nil {
		return nil
	}
	return &muscleGroupResponse{ID: mg.ID, Name: mg.Name, Description: mg.Description}
}

func toExerciseResponse(e *domain.Exercise) *exerciseResponse {
	if e == nil {
		return nil
	}
	return &exerciseResponse{
		ID:            e.ID,
		MuscleGroupID: e.MuscleGroupID,
		Name:          e.Name,
		Description:   e.Description,
		Steps:         e.Steps,
		VideoURL:      e.VideoURL,
		MuscleGroup:   toMuscleGroupResponse(e.MuscleGroup),
	}
}

func toExerciseLogResponse(s *domain.ExerciseLog) exerciseLogResponse {
	return exerciseLogResponse{
		ID:            s.ID,
		WorkoutLogID:  s.WorkoutLogID,
		ExerciseID:    s.ExerciseID,
		SetNumber:     s.SetNumber,
		RepsCompleted: s.RepsCompleted,
		WeightKg:      s.WeightKg,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		Exercise:      toExerciseResponse(s.Exercise),
	}
}

func toExerciseLogResponses(sets []domain.ExerciseLog) []exerciseLogResponse {
	out := make([]exerciseLogResponse, 0, len(sets))
	for i := range sets {
		out = append(out, toExerciseLogResponse(&sets[i]))
	}
	return out
}

func toWorkoutDayResponse(d *domain.WorkoutDay) *workoutDayResponse {
	if d == nil {
		return nil
	}
	resp := &workoutDayResponse{
		ID:            d.ID,
		PlanID:        d.PlanID,
		DayNumber:     d.DayNumber,
		DayName:       d.DayName,
		MuscleGroupID: d.MuscleGroupID,
		MuscleGroup:   toMuscleGroupResponse(d.MuscleGroup),
	}
	for i := range d.Exercises {
		ex := &d.Exercises[i]
		resp.Exercises = append(resp.Exercises, workoutDayExerciseResponse{
			ID:          ex.ID,
			ExerciseID:  ex.ExerciseID,
			Sets:        ex.Sets,
			Reps:        ex.Reps,
			RestSeconds: ex.RestSeconds,
			OrderIndex:  ex.OrderIndex,
			Exercise:    toExerciseResponse(ex.Exercise),
		})
	}
	return resp
}

func toWorkoutLogResponse(l *domain.WorkoutLog) workoutLogResponse {
	return workoutLogResponse{
		ID:            l.ID,
		WorkoutDayID:  l.WorkoutDayID,
		WorkoutName:   l.WorkoutName,
		CompletedDate: l.CompletedDate.Format(dateLayout),
		Notes:         l.Notes,
		IsManual:      l.IsManual,
		CreatedAt:     l.CreatedAt,
		WorkoutDay:    toWorkoutDayResponse(l.WorkoutDay),
		ExerciseLogs:  toExerciseLogResponses(l.ExerciseLogs),
	}
}
