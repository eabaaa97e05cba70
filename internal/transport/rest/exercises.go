package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// referenceService defines the minimal interface needed by ExerciseHandler.
type referenceService interface {
	GetExercise(ctx context.Context, id int64) (*domain.Exercise, error)
	ListExercises(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error)
	ListMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error)
}

// ExerciseHandler serves the read-only exercise catalog.
type ExerciseHandler struct {
	svc referenceService
	log *slog.Logger
}

// NewExerciseHandler creates an ExerciseHandler.
func NewExerciseHandler(svc referenceService, logger *slog.Logger) *ExerciseHandler {
	return &ExerciseHandler{svc: svc, log: logger.With("handler", "exercises")}
}

// List handles GET /api/exercises. Filters: ?muscleGroupId=, ?search=.
func (h *ExerciseHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	var filter domain.ExerciseFilter
	if raw := r.URL.Query().Get("muscleGroupId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid muscleGroupId")
			return
		}
		filter.MuscleGroupID = &id
	}
	filter.Search = r.URL.Query().Get("search")

	exercises, err := h.svc.ListExercises(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]exerciseResponse, 0, len(exercises))
	for i := range exercises {
		out = append(out, *toExerciseResponse(&exercises[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"exercises": out})
}

// Get handles GET /api/exercises/{id}.
func (h *ExerciseHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	exercise, err := h.svc.GetExercise(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toExerciseResponse(exercise))
}

// ListMuscleGroups handles GET /api/muscle-groups.
func (h *ExerciseHandler) ListMuscleGroups(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	groups, err := h.svc.ListMuscleGroups(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]muscleGroupResponse, 0, len(groups))
	for i := range groups {
		out = append(out, *toMuscleGroupResponse(&groups[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"muscleGroups": out})
}
