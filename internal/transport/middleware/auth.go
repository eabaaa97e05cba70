package middleware

import (
	"net/http"
	"strings"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
	"github.com/kvolkov/gymtrack-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token, expectedType string) (int64, string, error)
}

// Auth extracts and validates the bearer token, putting the user id and
// admin flag on the context. Requests without a token pass through
// anonymously; handlers decide whether authentication is required.
func Auth(validator tokenValidator, accessTokenType string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, role, err := validator.ValidateToken(token, accessTokenType)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithAdmin(ctx, role == domain.UserTypeAdmin.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
