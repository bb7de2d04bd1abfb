// Package app assembles the server: configuration, logging, storage,
// services and the HTTP stack.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/unwind-backend/internal/adapter/postgres"
	"github.com/heartmarshall/unwind-backend/internal/adapter/postgres/dailyrecord"
	schedulerepo "github.com/heartmarshall/unwind-backend/internal/adapter/postgres/schedule"
	userrepo "github.com/heartmarshall/unwind-backend/internal/adapter/postgres/user"
	redisadapter "github.com/heartmarshall/unwind-backend/internal/adapter/redis"
	"github.com/heartmarshall/unwind-backend/internal/adapter/redis/token"
	"github.com/heartmarshall/unwind-backend/internal/auth"
	"github.com/heartmarshall/unwind-backend/internal/config"
	authsvc "github.com/heartmarshall/unwind-backend/internal/service/auth"
	schedulesvc "github.com/heartmarshall/unwind-backend/internal/service/schedule"
	statssvc "github.com/heartmarshall/unwind-backend/internal/service/stats"
	"github.com/heartmarshall/unwind-backend/internal/transport/middleware"
	"github.com/heartmarshall/unwind-backend/internal/transport/rest"
)

// Run loads configuration, connects to PostgreSQL and Redis, and serves HTTP
// until ctx is cancelled. Shutdown drains in-flight requests for up to
// server.shutdown_timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("home_timezone", cfg.Stats.HomeTimezone),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := migrateUp(ctx, pool, logger); err != nil {
			return err
		}
	}

	rdb, err := redisadapter.NewClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           newHandler(cfg, logger, pool, rdb, limiter),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// newHandler builds repositories, services and handlers over the given
// connections and returns the routed HTTP stack.
func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	rdb *goredis.Client,
	limiter *middleware.RateLimiter,
) http.Handler {
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	schedules := schedulerepo.New(pool)
	records := dailyrecord.New(pool)
	tokens := token.New(rdb, cfg.Auth.RefreshTokenTTL)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	authService := authsvc.NewService(logger, users, tokens, hasher, jwtManager)
	scheduleService := schedulesvc.NewService(logger, schedules, txm)
	statsService := statssvc.NewService(logger, records, users, txm, cfg.Stats.Location)

	return newRouter(cfg, logger, handlers{
		health:    rest.NewHealthHandler(pool, tokens, BuildVersion()),
		auth:      rest.NewAuthHandler(authService, logger),
		schedules: rest.NewScheduleHandler(scheduleService, logger),
		stats:     rest.NewStatsHandler(statsService, logger),
	}, authService, limiter)
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close()

	applied, err := m.Up(ctx)
	if err != nil {
		return err
	}

	logger.Info("migrations applied", slog.Int("count", applied))
	return nil
}

// serve runs srv until it fails or ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
