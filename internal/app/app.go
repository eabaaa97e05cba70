// Package app wires configuration, storage, services and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	authpkg "github.com/kvolkov/gymtrack-backend/internal/auth"
	"github.com/kvolkov/gymtrack-backend/internal/config"

	"github.com/kvolkov/gymtrack-backend/internal/adapter/postgres"
	exerciserepo "github.com/kvolkov/gymtrack-backend/internal/adapter/postgres/exercise"
	planrepo "github.com/kvolkov/gymtrack-backend/internal/adapter/postgres/plan"
	sharerepo "github.com/kvolkov/gymtrack-backend/internal/adapter/postgres/share"
	userrepo "github.com/kvolkov/gymtrack-backend/internal/adapter/postgres/user"
	logrepo "github.com/kvolkov/gymtrack-backend/internal/adapter/postgres/workoutlog"

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

// Run loads configuration, connects storage, wires services and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	tx := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	exercises := exerciserepo.New(pool)
	plans := planrepo.New(pool)
	logs := logrepo.New(pool)
	shares := sharerepo.New(pool)

	jwt := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer,
		cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	hasher := authpkg.NewHasher(cfg.Auth.BcryptCost)

	authSvc := authservice.NewService(logger, users, hasher, jwt)
	loggingSvc := logging.NewService(logger, logs, plans, tx)
	planSvc := planservice.NewService(logger, plans, tx)
	shareSvc := shareservice.NewService(logger, shares, logs, tx, cfg.Share)
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
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RatePerMinute),
		middleware.Auth(jwt, authpkg.TokenTypeAccess),
	)(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
