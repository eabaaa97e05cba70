//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/kvolkov/gymtrack-backend/internal/adapter/postgres"
	exerciserepo "github.com/kvolkov/gymtrack-backend/internal/adapter/postgres/exercise"
	planrepo "github.com/kvolkov/gymtrack-backend/internal/adapter/postgres/plan"
	sharerepo "github.com/kvolkov/gymtrack-backend/internal/adapter/postgres/share"
	"github.com/kvolkov/gymtrack-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/kvolkov/gymtrack-backend/internal/adapter/postgres/user"
	logrepo "github.com/kvolkov/gymtrack-backend/internal/adapter/postgres/workoutlog"
	authpkg "github.com/kvolkov/gymtrack-backend/internal/auth"
	"github.com/kvolkov/gymtrack-backend/internal/config"
	authservice "github.com/kvolkov/gymtrack-backend/internal/service/auth"
	"github.com/kvolkov/gymtrack-backend/internal/service/dashboard"
	"github.com/kvolkov/gymtrack-backend/internal/service/logging"
	planservice "github.com/kvolkov/gymtrack-backend/internal/service/plan"
	"github.com/kvolkov/gymtrack-backend/internal/service/progress"
	"github.com/kvolkov/gymtrack-backend/internal/service/reference"
	shareservice "github.com/kvolkov/gymtrack-backend/internal/service/share"
	"github.com/kvolkov/gymtrack-backend/internal/transport/middleware"
	"github.com/kvolkov/gymtrack-backend/internal/transport/rest"
)

// shareDailyLimit is deliberately small so quota tests stay cheap.
const shareDailyLimit = 3

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	tx := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	exercises := exerciserepo.New(pool)
	plans := planrepo.New(pool)
	logs := logrepo.New(pool)
	shares := sharerepo.New(pool)

	jwtMgr := authpkg.NewJWTManager(
		"test-secret-at-least-32-chars-long!!", "test-issuer",
		15*time.Minute, 720*time.Hour,
	)
	hasher := authpkg.NewHasher(4)

	authSvc := authservice.NewService(logger, users, hasher, jwtMgr)
	loggingSvc := logging.NewService(logger, logs, plans, tx)
	planSvc := planservice.NewService(logger, plans, tx)
	shareSvc := shareservice.NewService(logger, shares, logs, tx, config.ShareConfig{
		FrontendURL: "http://localhost:5173",
		DailyLimit:  shareDailyLimit,
	})
	dashboardSvc := dashboard.NewService(logger, plans, logs)
	progressSvc := progress.NewService(logger, logs, exercises)
	referenceSvc := reference.NewService(logger, exercises)

	mux := rest.NewRouter(rest.Handlers{
		Auth:      rest.NewAuthHandler(authSvc, logger),
		Logs:      rest.NewLogHandler(loggingSvc, logger),
		Plans:     rest.NewPlanHandler(planSvc, logger),
		Dashboard: rest.NewDashboardHandler(dashboardSvc, logger),
		Exercises: rest.NewExerciseHandler(referenceSvc, logger),
		Progress:  rest.NewProgressHandler(progressSvc, logger),
		Share:     rest.NewShareHandler(shareSvc, logger),
		Admin:     rest.NewAdminHandler(shareSvc, logger),
		Health:    rest.NewHealthHandler(pool, "test-version"),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtMgr, authpkg.TokenTypeAccess),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// apiRequest sends a JSON request and returns status + decoded body.
// A nil body sends no payload; a 204 returns a nil map.
func (ts *testServer) apiRequest(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// registerUser registers a fresh user through the API and returns the
// access token and decoded auth response.
func registerUser(t *testing.T, ts *testServer) (string, map[string]any) {
	t.Helper()

	username := "e2e-" + uuid.NewString()[:8]
	status, body := ts.apiRequest(t, http.MethodPost, "/api/auth/register", map[string]any{
		"username": username,
		"password": "password1",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register failed: %v", body)

	token, ok := body["accessToken"].(string)
	require.True(t, ok, "expected accessToken in response")
	require.NotEmpty(t, token)
	return token, body
}

// adminToken seeds an admin directly and mints an access token for it.
func adminToken(t *testing.T, ts *testServer) string {
	t.Helper()

	id := testhelper.CreateAdmin(t, ts.Pool, "e2e-admin-"+uuid.NewString()[:8])
	token, err := ts.jwt.GenerateAccessToken(id, "admin")
	require.NoError(t, err)
	return token
}

// firstExerciseID picks an exercise from the seeded catalog.
func firstExerciseID(t *testing.T, ts *testServer) int64 {
	t.Helper()
	return testhelper.FirstExerciseID(t, ts.Pool)
}

// errorMessage extracts the message from an error envelope.
func errorMessage(t *testing.T, body map[string]any) string {
	t.Helper()
	msg, ok := body["message"].(string)
	require.True(t, ok, "expected message in error envelope: %v", body)
	return msg
}
