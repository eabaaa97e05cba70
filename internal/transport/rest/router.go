package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Logs      *LogHandler
	Plans     *PlanHandler
	Dashboard *DashboardHandler
	Exercises *ExerciseHandler
	Progress  *ProgressHandler
	Share     *ShareHandler
	Admin     *AdminHandler
	Health    *HealthHandler
}

// NewRouter mounts all REST routes on a ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("GET /api/auth/me", h.Auth.Me)

	mux.HandleFunc("PUT /api/logs/manual/sync", h.Logs.SyncManual)
	mux.HandleFunc("POST /api/logs", h.Logs.Start)
	mux.HandleFunc("GET /api/logs/{id}", h.Logs.Get)
	mux.HandleFunc("PUT /api/logs/{id}", h.Logs.Update)
	mux.HandleFunc("PUT /api/logs/{id}/complete", h.Logs.Complete)
	mux.HandleFunc("DELETE /api/logs/{id}", h.Logs.Delete)
	mux.HandleFunc("POST /api/logs/{id}/sets", h.Logs.AddSet)
	mux.HandleFunc("PUT /api/logs/sets/{setId}", h.Logs.UpdateSet)
	mux.HandleFunc("DELETE /api/logs/sets/{setId}", h.Logs.DeleteSet)

	mux.HandleFunc("POST /api/plans", h.Plans.Create)
	mux.HandleFunc("GET /api/plans", h.Plans.List)
	mux.HandleFunc("GET /api/plans/active", h.Plans.GetActive)
	mux.HandleFunc("GET /api/plans/{id}", h.Plans.Get)
	mux.HandleFunc("PUT /api/plans/{id}/activate", h.Plans.Activate)
	mux.HandleFunc("DELETE /api/plans/{id}", h.Plans.Delete)
	mux.HandleFunc("POST /api/plans/{id}/days", h.Plans.AddDay)
	mux.HandleFunc("GET /api/days/{id}", h.Plans.GetDay)
	mux.HandleFunc("DELETE /api/days/{id}", h.Plans.DeleteDay)
	mux.HandleFunc("POST /api/days/{id}/exercises", h.Plans.AddDayExercise)
	mux.HandleFunc("DELETE /api/day-exercises/{id}", h.Plans.DeleteDayExercise)

	mux.HandleFunc("GET /api/dashboard/today", h.Dashboard.Today)

	mux.HandleFunc("GET /api/exercises", h.Exercises.List)
	mux.HandleFunc("GET /api/exercises/{id}", h.Exercises.Get)
	mux.HandleFunc("GET /api/muscle-groups", h.Exercises.ListMuscleGroups)

	mux.HandleFunc("GET /api/history", h.Progress.History)
	mux.HandleFunc("GET /api/progress/exercises/{id}", h.Progress.ExerciseProgress)
	mux.HandleFunc("GET /api/progress/stats", h.Progress.Stats)
	mux.HandleFunc("GET /api/progress/streak", h.Progress.Streak)

	mux.HandleFunc("POST /api/share", h.Share.Create)
	mux.HandleFunc("GET /api/share/{token}", h.Share.Get)

	mux.HandleFunc("GET /api/admin/share", h.Admin.ListShares)
	mux.HandleFunc("PUT /api/admin/share/{token}/revoke", h.Admin.RevokeShare)
	mux.HandleFunc("PUT /api/admin/share/{token}/activate", h.Admin.ActivateShare)
	mux.HandleFunc("DELETE /api/admin/share/{token}", h.Admin.DeleteShare)

	return mux
}
