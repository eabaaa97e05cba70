package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
	"github.com/kvolkov/gymtrack-backend/pkg/ctxutil"
)

// errorResponse is the envelope for every error the API returns.
type errorResponse struct {
	Error      bool   `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: true, Message: message, StatusCode: status})
}

// handleError maps domain errors to HTTP statuses. Unrecognized errors are
// logged and surface as an opaque 500.
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, errMessage(err))
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, errMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, errMessage(err))
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, errMessage(err))
	case errors.Is(err, domain.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, errMessage(err))
	default:
		logger.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// errMessage strips the trailing sentinel text that wrapping adds, leaving
// the human-readable part for the client.
func errMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{
		domain.ErrNotFound, domain.ErrAlreadyExists, domain.ErrForbidden,
		domain.ErrRateLimited, domain.ErrConflict,
	} {
		msg = strings.TrimSuffix(msg, ": "+sentinel.Error())
	}
	return msg
}

// requireUser extracts the authenticated user id, writing a 401 and
// returning false for anonymous requests.
func requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return 0, false
	}
	return userID, true
}

// requireAdmin additionally requires the admin role.
func requireAdmin(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := requireUser(w, r)
	if !ok {
		return 0, false
	}
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, http.StatusForbidden, "admin access required")
		return 0, false
	}
	return userID, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
