package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/kvolkov/gymtrack-backend/internal/service/dashboard"
)

// dashboardService defines the minimal interface needed by DashboardHandler.
type dashboardService interface {
	GetToday(ctx context.Context, userID int64, date string) (*dashboard.Today, error)
}

// DashboardHandler serves the dashboard endpoint.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type todayResponse struct {
	Plan     *planResponse       `json:"plan,omitempty"`
	Day      *workoutDayResponse `json:"day,omitempty"`
	Log      *workoutLogResponse `json:"log,omitempty"`
	SetCount int                 `json:"setCount"`
}

// Today handles GET /api/dashboard/today. Optional ?date=YYYY-MM-DD.
func (h *DashboardHandler) Today(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	today, err := h.svc.GetToday(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := todayResponse{
		Day:      toWorkoutDayResponse(today.Day),
		SetCount: today.SetCount,
	}
	if today.Plan != nil {
		plan := toPlanResponse(today.Plan)
		resp.Plan = &plan
	}
	if today.Log != nil {
		logRow := toWorkoutLogResponse(today.Log)
		resp.Log = &logRow
	}
	writeJSON(w, http.StatusOK, resp)
}
