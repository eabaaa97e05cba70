package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
	"github.com/kvolkov/gymtrack-backend/internal/service/share"
)

// shareService defines the minimal interface needed by ShareHandler.
type shareService interface {
	CreateShare(ctx context.Context, userID int64, in share.CreateInput) (*share.CreateResult, error)
	Resolve(ctx context.Context, token uuid.UUID) (*share.SharedView, error)
}

// ShareHandler serves share-link REST endpoints.
type ShareHandler struct {
	svc shareService
	log *slog.Logger
}

// NewShareHandler creates a ShareHandler.
func NewShareHandler(svc shareService, logger *slog.Logger) *ShareHandler {
	return &ShareHandler{svc: svc, log: logger.With("handler", "share")}
}

type createShareRequest struct {
	FromDate      string     `json:"fromDate"`
	ToDate        string     `json:"toDate"`
	ExpiresInDays *flexInt64 `json:"expiresInDays,omitempty"`
}

type shareResponse struct {
	ID        int64      `json:"id"`
	Token     string     `json:"token"`
	FromDate  string     `json:"fromDate"`
	ToDate    string     `json:"toDate"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	Owner     *ownerResponse `json:"owner,omitempty"`
}

type ownerResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type createShareResponse struct {
	Share   shareResponse `json:"share"`
	URL     string        `json:"url"`
	Reused  bool          `json:"reused"`
	Renewed bool          `json:"renewed"`
}

type sharedViewResponse struct {
	Share   shareResponse          `json:"share"`
	History workoutHistoryResponse `json:"history"`
}

// Create handles POST /api/share.
func (h *ShareHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req createShareRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	in := share.CreateInput{FromDate: req.FromDate, ToDate: req.ToDate}
	if req.ExpiresInDays != nil {
		days := int(*req.ExpiresInDays)
		in.ExpiresInDays = &days
	}

	result, err := h.svc.CreateShare(r.Context(), userID, in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusCreated
	if result.Reused || result.Renewed {
		status = http.StatusOK
	}
	writeJSON(w, status, createShareResponse{
		Share:   toShareResponse(result.Share),
		URL:     result.URL,
		Reused:  result.Reused,
		Renewed: result.Renewed,
	})
}

// Get handles GET /api/share/{token}. Public, no authentication.
func (h *ShareHandler) Get(w http.ResponseWriter, r *http.Request) {
	token, err := uuid.Parse(r.PathValue("token"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid share token")
		return
	}

	view, err := h.svc.Resolve(r.Context(), token)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, sharedViewResponse{
		Share:   toShareResponse(view.Share),
		History: toWorkoutHistoryResponse(view.History),
	})
}

func toShareResponse(s *domain.WorkoutShare) shareResponse {
	resp := shareResponse{
		ID:        s.ID,
		Token:     s.Token.String(),
		FromDate:  s.FromDate.Format(dateLayout),
		ToDate:    s.ToDate.Format(dateLayout),
		ExpiresAt: s.ExpiresAt,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
	}
	if s.Owner != nil {
		resp.Owner = &ownerResponse{ID: s.Owner.ID, Username: s.Owner.Username}
	}
	return resp
}
