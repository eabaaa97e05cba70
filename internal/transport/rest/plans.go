package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
	"github.com/kvolkov/gymtrack-backend/internal/service/plan"
)

// planService defines the minimal interface needed by PlanHandler.
type planService interface {
	Create(ctx context.Context, userID int64, in plan.CreateInput) (*domain.WorkoutPlan, error)
	List(ctx context.Context, userID int64) ([]domain.WorkoutPlan, error)
	Get(ctx context.Context, userID, id int64) (*domain.WorkoutPlan, error)
	GetActive(ctx context.Context, userID int64) (*domain.WorkoutPlan, error)
	GetDay(ctx context.Context, userID, dayID int64) (*domain.WorkoutDay, error)
	AddDay(ctx context.Context, userID, planID int64, in plan.DayInput) (*domain.WorkoutDay, error)
	DeleteDay(ctx context.Context, userID, dayID int64) error
	AddDayExercise(ctx context.Context, userID, dayID int64, in plan.DayExerciseInput) (*domain.WorkoutDay, error)
	DeleteDayExercise(ctx context.Context, userID, id int64) error
	Activate(ctx context.Context, userID, id int64) error
	Delete(ctx context.Context, userID, id int64) error
}

// PlanHandler serves workout-plan REST endpoints.
type PlanHandler struct {
	svc planService
	log *slog.Logger
}

// NewPlanHandler creates a PlanHandler.
func NewPlanHandler(svc planService, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{svc: svc, log: logger.With("handler", "plans")}
}

type planDayExerciseRequest struct {
	ExerciseID  flexInt64  `json:"exerciseId"`
	Sets        flexInt64  `json:"sets"`
	Reps        string     `json:"reps"`
	RestSeconds *flexInt64 `json:"restSeconds,omitempty"`
}

type planDayRequest struct {
	DayNumber     flexInt64                `json:"dayNumber"`
	DayName       string                   `json:"dayName"`
	MuscleGroupID *flexInt64               `json:"muscleGroupId,omitempty"`
	Exercises     []planDayExerciseRequest `json:"exercises,omitempty"`
}

type createPlanRequest struct {
	Name         string           `json:"name"`
	StartDate    string           `json:"startDate,omitempty"`
	EndDate      *string          `json:"endDate,omitempty"`
	Duration     *string          `json:"duration,omitempty"`
	TrainingType *string          `json:"trainingType,omitempty"`
	Split        *string          `json:"split,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
	Activate     bool             `json:"activate,omitempty"`
	Days         []planDayRequest `json:"days,omitempty"`
}

type planResponse struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	StartDate    string               `json:"startDate"`
	EndDate      *string              `json:"endDate,omitempty"`
	Duration     *string              `json:"duration,omitempty"`
	TrainingType *string              `json:"trainingType,omitempty"`
	Split        *string              `json:"split,omitempty"`
	Notes        *string              `json:"notes,omitempty"`
	IsActive     bool                 `json:"isActive"`
	CreatedAt    time.Time            `json:"createdAt"`
	Days         []workoutDayResponse `json:"days,omitempty"`
}

// Create handles POST /api/plans.
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req createPlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	in := plan.CreateInput{
		Name:         req.Name,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Duration:     req.Duration,
		TrainingType: req.TrainingType,
		Split:        req.Split,
		Notes:        req.Notes,
		Activate:     req.Activate,
	}
	for _, d := range req.Days {
		in.Days = append(in.Days, toDayInput(d))
	}

	created, err := h.svc.Create(r.Context(), userID, in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPlanResponse(created))
}

// List handles GET /api/plans.
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	plans, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]planResponse, 0, len(plans))
	for i := range plans {
		out = append(out, toPlanResponse(&plans[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"plans": out})
}

// Get handles GET /api/plans/{id}.
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	p, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanResponse(p))
}

// GetActive handles GET /api/plans/active.
func (h *PlanHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	p, err := h.svc.GetActive(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanResponse(p))
}

// GetDay handles GET /api/days/{id}.
func (h *PlanHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	day, err := h.svc.GetDay(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkoutDayResponse(day))
}

// AddDay handles POST /api/plans/{id}/days.
func (h *PlanHandler) AddDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	planID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req planDayRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	day, err := h.svc.AddDay(r.Context(), userID, planID, toDayInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWorkoutDayResponse(day))
}

// DeleteDay handles DELETE /api/days/{id}.
func (h *PlanHandler) DeleteDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteDay(r.Context(), userID, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddDayExercise handles POST /api/days/{id}/exercises.
func (h *PlanHandler) AddDayExercise(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	dayID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req planDayExerciseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	day, err := h.svc.AddDayExercise(r.Context(), userID, dayID, toDayExerciseInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWorkoutDayResponse(day))
}

// DeleteDayExercise handles DELETE /api/day-exercises/{id}.
func (h *PlanHandler) DeleteDayExercise(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteDayExercise(r.Context(), userID, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Activate handles PUT /api/plans/{id}/activate.
func (h *PlanHandler) Activate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Activate(r.Context(), userID, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Delete handles DELETE /api/plans/{id}.
func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toDayInput(d planDayRequest) plan.DayInput {
	day := plan.DayInput{
		DayNumber: int(d.DayNumber),
		DayName:   d.DayName,
	}
	if d.MuscleGroupID != nil {
		id := int64(*d.MuscleGroupID)
		day.MuscleGroupID = &id
	}
	for _, e := range d.Exercises {
		day.Exercises = append(day.Exercises, toDayExerciseInput(e))
	}
	return day
}

func toDayExerciseInput(e planDayExerciseRequest) plan.DayExerciseInput {
	ex := plan.DayExerciseInput{
		ExerciseID: int64(e.ExerciseID),
		Sets:       int(e.Sets),
		Reps:       e.Reps,
	}
	if e.RestSeconds != nil {
		ex.RestSeconds = int(*e.RestSeconds)
	}
	return ex
}

func toPlanResponse(p *domain.WorkoutPlan) planResponse {
	resp := planResponse{
		ID:           p.ID,
		Name:         p.Name,
		StartDate:    p.StartDate.Format(dateLayout),
		Duration:     p.Duration,
		TrainingType: p.TrainingType,
		Split:        p.Split,
		Notes:        p.Notes,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
	}
	if p.EndDate != nil {
		endDate := p.EndDate.Format(dateLayout)
		resp.EndDate = &endDate
	}
	for i := range p.Days {
		resp.Days = append(resp.Days, *toWorkoutDayResponse(&p.Days[i]))
	}
	return resp
}
