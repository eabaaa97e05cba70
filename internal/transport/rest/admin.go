package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// shareAdminService defines the minimal interface needed by AdminHandler.
type shareAdminService interface {
	ListShares(ctx context.Context, filter domain.ShareListFilter) ([]domain.WorkoutShare, error)
	Revoke(ctx context.Context, token uuid.UUID) error
	Activate(ctx context.Context, token uuid.UUID) error
	Delete(ctx context.Context, token uuid.UUID) error
}

// AdminHandler serves the admin share-management endpoints.
type AdminHandler struct {
	shares shareAdminService
	log    *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(shares shareAdminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{shares: shares, log: logger.With("handler", "admin")}
}

// ListShares handles GET /api/admin/share. Filters: ?userId=, ?active=,
// ?search= (token prefix or username).
func (h *AdminHandler) ListShares(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	var filter domain.ShareListFilter
	if raw := r.URL.Query().Get("userId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid userId")
			return
		}
		filter.UserID = &id
	}
	if raw := r.URL.Query().Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid active")
			return
		}
		filter.IsActive = &active
	}
	filter.Search = strings.TrimSpace(r.URL.Query().Get("search"))

	shares, err := h.shares.ListShares(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]shareResponse, 0, len(shares))
	for i := range shares {
		out = append(out, toShareResponse(&shares[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"shares": out})
}

// RevokeShare handles PUT /api/admin/share/{token}/revoke.
func (h *AdminHandler) RevokeShare(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.shares.Revoke)
}

// ActivateShare handles PUT /api/admin/share/{token}/activate.
func (h *AdminHandler) ActivateShare(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.shares.Activate)
}

// DeleteShare handles DELETE /api/admin/share/{token}.
func (h *AdminHandler) DeleteShare(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	token, ok := pathToken(w, r)
	if !ok {
		return
	}

	if err := h.shares.Delete(r.Context(), token); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) error) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	token, ok := pathToken(w, r)
	if !ok {
		return
	}

	if err := op(r.Context(), token); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func pathToken(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	token, err := uuid.Parse(r.PathValue("token"))
	if err != nil {
		writeError(w, http.StatusNotFound, "share not found")
		return uuid.Nil, false
	}
	return token, true
}
