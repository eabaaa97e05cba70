package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// progressService defines the minimal interface needed by ProgressHandler.
type progressService interface {
	History(ctx context.Context, userID int64, from, to string) (*domain.WorkoutHistory, error)
	ExerciseProgress(ctx context.Context, userID, exerciseID int64, from, to string) (*domain.Exercise, []domain.ExerciseProgressPoint, error)
	Overall(ctx context.Context, userID int64) (*domain.OverallStats, error)
	Streak(ctx context.Context, userID int64) (int, error)
}

// ProgressHandler serves history and progress endpoints.
type ProgressHandler struct {
	svc progressService
	log *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(svc progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, log: logger.With("handler", "progress")}
}

type workoutHistoryResponse struct {
	FromDate            string                   `json:"fromDate"`
	ToDate              string                   `json:"toDate"`
	TotalWorkouts       int                      `json:"totalWorkouts"`
	TotalSets           int                      `json:"totalSets"`
	TotalVolumeKg       float64                  `json:"totalVolumeKg"`
	VolumeByMuscleGroup map[string]float64       `json:"volumeByMuscleGroup"`
	Workouts            []historyWorkoutResponse `json:"workouts"`
}

type historyWorkoutResponse struct {
	Date        string                    `json:"date"`
	WorkoutName string                    `json:"workoutName"`
	MuscleGroup string                    `json:"muscleGroup"`
	Notes       *string                   `json:"notes,omitempty"`
	Exercises   []historyExerciseResponse `json:"exercises"`
}

type historyExerciseResponse struct {
	ExerciseID   int64                `json:"exerciseId"`
	ExerciseName string               `json:"exerciseName"`
	MuscleGroup  string               `json:"muscleGroup"`
	Sets         []historySetResponse `json:"sets"`
}

type historySetResponse struct {
	SetNumber int     `json:"setNumber"`
	Reps      int     `json:"reps"`
	WeightKg  float64 `json:"weightKg"`
	Notes     *string `json:"notes,omitempty"`
}

func toWorkoutHistoryResponse(h *domain.WorkoutHistory) workoutHistoryResponse {
	out := workoutHistoryResponse{
		FromDate:            h.FromDate.Format(dateLayout),
		ToDate:              h.ToDate.Format(dateLayout),
		TotalWorkouts:       h.TotalWorkouts,
		TotalSets:           h.TotalSets,
		TotalVolumeKg:       h.TotalVolumeKg,
		VolumeByMuscleGroup: h.VolumeByMuscleGroup,
		Workouts:            make([]historyWorkoutResponse, 0, len(h.Workouts)),
	}
	for i := range h.Workouts {
		w := &h.Workouts[i]
		wr := historyWorkoutResponse{
			Date:        w.Date.Format(dateLayout),
			WorkoutName: w.WorkoutName,
			MuscleGroup: w.MuscleGroup,
			Notes:       w.Notes,
			Exercises:   make([]historyExerciseResponse, 0, len(w.Exercises)),
		}
		for j := range w.Exercises {
			e := &w.Exercises[j]
			er := historyExerciseResponse{
				ExerciseID:   e.ExerciseID,
				ExerciseName: e.ExerciseName,
				MuscleGroup:  e.MuscleGroup,
				Sets:         make([]historySetResponse, 0, len(e.Sets)),
			}
			for _, s := range e.Sets {
				er.Sets = append(er.Sets, historySetResponse{
					SetNumber: s.SetNumber,
					Reps:      s.Reps,
					WeightKg:  s.WeightKg,
					Notes:     s.Notes,
				})
			}
			wr.Exercises = append(wr.Exercises, er)
		}
		out.Workouts = append(out.Workouts, wr)
	}
	return out
}

// History handles GET /api/history. Required filters: ?from=, ?to=.
func (h *ProgressHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	history, err := h.svc.History(r.Context(), userID,
		r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkoutHistoryResponse(history))
}

type progressPointResponse struct {
	Date          string  `json:"date"`
	WorkoutLogID  int64   `json:"workoutLogId"`
	SetNumber     int     `json:"setNumber"`
	RepsCompleted int     `json:"repsCompleted"`
	WeightKg      float64 `json:"weightKg"`
}

// ExerciseProgress handles GET /api/progress/exercises/{id}.
func (h *ProgressHandler) ExerciseProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	exerciseID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	exercise, points, err := h.svc.ExerciseProgress(r.Context(), userID, exerciseID,
		r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]progressPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, progressPointResponse{
			Date:          p.Date.Format(dateLayout),
			WorkoutLogID:  p.WorkoutLogID,
			SetNumber:     p.SetNumber,
			RepsCompleted: p.RepsCompleted,
			WeightKg:      p.WeightKg,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"exercise": toExerciseResponse(exercise),
		"points":   out,
	})
}

// Streak handles GET /api/progress/streak.
func (h *ProgressHandler) Streak(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	streak, err := h.svc.Streak(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"streakDays": streak})
}

type statsResponse struct {
	TotalWorkouts int        `json:"totalWorkouts"`
	TotalSets     int        `json:"totalSets"`
	TotalVolumeKg float64    `json:"totalVolumeKg"`
	FirstWorkout  *time.Time `json:"firstWorkout,omitempty"`
	LastWorkout   *time.Time `json:"lastWorkout,omitempty"`
	StreakDays    int        `json:"streakDays"`
}

// Stats handles GET /api/progress/stats.
func (h *ProgressHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	stats, err := h.svc.Overall(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	streak, err := h.svc.Streak(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalWorkouts: stats.TotalWorkouts,
		TotalSets:     stats.TotalSets,
		TotalVolumeKg: stats.TotalVolumeKg,
		FirstWorkout:  stats.FirstWorkout,
		LastWorkout:   stats.LastWorkout,
		StreakDays:    streak,
	})
}
