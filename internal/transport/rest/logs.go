package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
	"github.com/kvolkov/gymtrack-backend/internal/service/logging"
)

// loggingService defines the minimal interface needed by LogHandler.
type loggingService interface {
	SyncManualWorkout(ctx context.Context, userID int64, in logging.SyncInput) (*logging.SyncResult, error)
	StartWorkout(ctx context.Context, userID int64, in logging.StartInput) (*domain.WorkoutLog, error)
	GetLog(ctx context.Context, userID, id int64) (*domain.WorkoutLog, error)
	UpdateLog(ctx context.Context, userID, id int64, upd domain.WorkoutLogUpdate) (*domain.WorkoutLog, error)
	CompleteWorkout(ctx context.Context, userID, id int64, notes *string) (*logging.CompleteSummary, error)
	DeleteLog(ctx context.Context, userID, id int64) error
	AddWorkoutSet(ctx context.Context, userID, logID int64, in logging.SetInput) (*domain.ExerciseLog, error)
	UpdateSet(ctx context.Context, userID, setID int64, upd domain.ExerciseSetUpdate) (*domain.ExerciseLog, error)
	DeleteSet(ctx context.Context, userID, setID int64) error
}

// LogHandler serves workout-log REST endpoints.
type LogHandler struct {
	svc loggingService
	log *slog.Logger
}

// NewLogHandler creates a LogHandler.
func NewLogHandler(svc loggingService, logger *slog.Logger) *LogHandler {
	return &LogHandler{svc: svc, log: logger.With("handler", "logs")}
}

type syncSetRequest struct {
	ID            *flexInt64  `json:"id,omitempty"`
	ExerciseID    flexInt64   `json:"exerciseId"`
	SetNumber     flexInt64   `json:"setNumber"`
	RepsCompleted flexInt64   `json:"repsCompleted"`
	WeightKg      flexFloat64 `json:"weightKg"`
	Notes         *string     `json:"notes,omitempty"`
}

type syncRequest struct {
	WorkoutLogID  *flexInt64       `json:"workoutLogId,omitempty"`
	WorkoutName   string           `json:"workoutName"`
	CompletedDate string           `json:"completedDate"`
	Notes         *string          `json:"notes,omitempty"`
	Sets          []syncSetRequest `json:"sets"`
}

type syncResponse struct {
	WorkoutLogID int64                 `json:"workoutLogId"`
	SavedAt      time.Time             `json:"savedAt"`
	ExerciseLogs []exerciseLogResponse `json:"exerciseLogs"`
}

// SyncManual handles PUT /api/logs/manual/sync.
func (h *LogHandler) SyncManual(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req syncRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Sets == nil {
		writeError(w, http.StatusBadRequest, "sets must be an array")
		return
	}

	in := logging.SyncInput{
		WorkoutName:   req.WorkoutName,
		CompletedDate: req.CompletedDate,
		Notes:         req.Notes,
		Sets:          make([]logging.SyncSetInput, 0, len(req.Sets)),
	}
	if req.WorkoutLogID != nil {
		id := int64(*req.WorkoutLogID)
		in.WorkoutLogID = &id
	}
	for _, s := range req.Sets {
		entry := logging.SyncSetInput{
			ExerciseID:    int64(s.ExerciseID),
			SetNumber:     int(s.SetNumber),
			RepsCompleted: int(s.RepsCompleted),
			WeightKg:      float64(s.WeightKg),
			Notes:         s.Notes,
		}
		if s.ID != nil {
			id := int64(*s.ID)
			entry.ID = &id
		}
		in.Sets = append(in.Sets, entry)
	}

	result, err := h.svc.SyncManualWorkout(r.Context(), userID, in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, syncResponse{
		WorkoutLogID: result.WorkoutLogID,
		SavedAt:      result.SavedAt,
		ExerciseLogs: toExerciseLogResponses(result.ExerciseLogs),
	})
}

type startLogRequest struct {
	WorkoutDayID *flexInt64 `json:"workoutDayId,omitempty"`
	WorkoutName  *string    `json:"workoutName,omitempty"`
	Date         string     `json:"date,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

// Start handles POST /api/logs.
func (h *LogHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req startLogRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	in := logging.StartInput{
		WorkoutName: req.WorkoutName,
		Date:        req.Date,
		Notes:       req.Notes,
	}
	if req.WorkoutDayID != nil {
		id := int64(*req.WorkoutDayID)
		in.WorkoutDayID = &id
	}

	logRow, err := h.svc.StartWorkout(r.Context(), userID, in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWorkoutLogResponse(logRow))
}

// Get handles GET /api/logs/{id}.
func (h *LogHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	logRow, err := h.svc.GetLog(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWorkoutLogResponse(logRow))
}

type updateLogRequest struct {
	WorkoutName   *string `json:"workoutName,omitempty"`
	CompletedDate *string `json:"completedDate,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// Update handles PUT /api/logs/{id}.
func (h *LogHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateLogRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	upd := domain.WorkoutLogUpdate{
		WorkoutName: req.WorkoutName,
		Notes:       req.Notes,
	}
	if req.CompletedDate != nil {
		date, err := domain.ParseDate(*req.CompletedDate)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		upd.CompletedDate = &date
	}

	logRow, err := h.svc.UpdateLog(r.Context(), userID, id, upd)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWorkoutLogResponse(logRow))
}

type completeLogRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type completeLogResponse struct {
	Log      workoutLogResponse `json:"log"`
	SetCount int                `json:"setCount"`
}

// Complete handles PUT /api/logs/{id}/complete.
func (h *LogHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req completeLogRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	summary, err := h.svc.CompleteWorkout(r.Context(), userID, id, req.Notes)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, completeLogResponse{
		Log:      toWorkoutLogResponse(summary.Log),
		SetCount: summary.SetCount,
	})
}

// Delete handles DELETE /api/logs/{id}.
func (h *LogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteLog(r.Context(), userID, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type addSetRequest struct {
	ExerciseID    flexInt64   `json:"exerciseId"`
	SetNumber     flexInt64   `json:"setNumber"`
	RepsCompleted flexInt64   `json:"repsCompleted"`
	WeightKg      flexFloat64 `json:"weightKg"`
	Notes         *string     `json:"notes,omitempty"`
}

// AddSet handles POST /api/logs/{id}/sets.
func (h *LogHandler) AddSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	logID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req addSetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	set, err := h.svc.AddWorkoutSet(r.Context(), userID, logID, logging.SetInput{
		ExerciseID:    int64(req.ExerciseID),
		SetNumber:     int(req.SetNumber),
		RepsCompleted: int(req.RepsCompleted),
		WeightKg:      float64(req.WeightKg),
		Notes:         req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toExerciseLogResponse(set))
}

type updateSetRequest struct {
	RepsCompleted *flexInt64   `json:"repsCompleted,omitempty"`
	WeightKg      *flexFloat64 `json:"weightKg,omitempty"`
	Notes         *string      `json:"notes,omitempty"`
}

// UpdateSet handles PUT /api/logs/sets/{setId}.
func (h *LogHandler) UpdateSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	setID, ok := pathID(w, r, "setId")
	if !ok {
		return
	}

	var req updateSetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	upd := domain.ExerciseSetUpdate{Notes: req.Notes}
	if req.RepsCompleted != nil {
		reps := int(*req.RepsCompleted)
		upd.RepsCompleted = &reps
	}
	if req.WeightKg != nil {
		weight := float64(*req.WeightKg)
		upd.WeightKg = &weight
	}

	set, err := h.svc.UpdateSet(r.Context(), userID, setID, upd)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toExerciseLogResponse(set))
}

// DeleteSet handles DELETE /api/logs/sets/{setId}.
func (h *LogHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	setID, ok := pathID(w, r, "setId")
	if !ok {
		return
	}

	if err := h.svc.DeleteSet(r.Context(), userID, setID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses an integer path parameter, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
