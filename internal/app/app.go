package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/revision-planner-backend/internal/auth"
	"github.com/heartmarshall/revision-planner-backend/internal/config"
	"github.com/heartmarshall/revision-planner-backend/internal/scheduler"
	"github.com/heartmarshall/revision-planner-backend/internal/transport/middleware"
	"github.com/heartmarshall/revision-planner-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, opens the store,
// serves the REST API and, when enabled, runs the daily seeding job until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("driver", cfg.Database.Driver),
		slog.String("log_level", cfg.Log.Level),
	)

	store, err := OpenStore(ctx, cfg.Database, logger, cfg.Database.MigrateOnStart)
	if err != nil {
		return err
	}
	defer store.Close()

	svcs := NewServices(logger, store, cfg.Planner)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, store, svcs, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.Planner.DailySeedEnabled {
		sched := scheduler.New(logger, svcs.Revisions, cfg.Planner.Location, cfg.Planner.DailySeedAt)
		g.Go(func() error { return sched.Run(gctx) })
	}

	return g.Wait()
}

// NewHandler builds the root HTTP handler with the full middleware chain
// around the API routes. A nil limiter serves without rate limiting.
func NewHandler(cfg *config.Config, logger *slog.Logger, store *Store, svcs Services, limiter *middleware.RateLimiter) http.Handler {
	opts := middleware.PrincipalOptions{
		DefaultOwner:   cfg.Planner.DefaultOwner,
		AllowAnonymous: cfg.Auth.AllowAnonymous,
	}
	if cfg.Auth.Enabled() {
		opts.Validator = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	}

	var limit middleware.Middleware
	if limiter != nil {
		limit = limiter.Limit(cfg.RateLimit.RequestsPerMinute)
	}

	api := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limit,
		middleware.Principal(opts),
	)

	return rest.Router{
		APIPrefix: cfg.Server.APIPrefix,
		Subjects:  rest.NewSubjectHandler(svcs.Subjects, logger),
		Revisions: rest.NewRevisionHandler(svcs.Revisions, logger),
		Health:    rest.NewHealthHandler(store.Pinger, store.Driver, BuildVersion()),
	}.Handler(api)
}
