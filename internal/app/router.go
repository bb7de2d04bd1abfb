package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/unwind-backend/internal/config"
	"github.com/heartmarshall/unwind-backend/internal/transport/middleware"
	"github.com/heartmarshall/unwind-backend/internal/transport/rest"
	"github.com/heartmarshall/unwind-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (ctxutil.Identity, error)
}

// handlers groups the REST handlers mounted by newRouter.
type handlers struct {
	health    *rest.HealthHandler
	auth      *rest.AuthHandler
	schedules *rest.ScheduleHandler
	stats     *rest.StatsHandler
}

// newRouter mounts every route and wraps the mux in the middleware chain.
// The auth endpoints are additionally rate limited per client IP.
func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	h handlers,
	validator tokenValidator,
	limiter *middleware.RateLimiter,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.health.Live)
	mux.HandleFunc("GET /ready", h.health.Ready)
	mux.HandleFunc("GET /health", h.health.Health)

	limited := limiter.Limit(cfg.RateLimit.AuthPerMinute)
	mux.Handle("POST /api/auth/signup", limited(http.HandlerFunc(h.auth.Signup)))
	mux.Handle("POST /api/auth/login", limited(http.HandlerFunc(h.auth.Login)))
	mux.Handle("POST /api/auth/refresh", limited(http.HandlerFunc(h.auth.Refresh)))
	mux.HandleFunc("POST /api/auth/logout", h.auth.Logout)

	mux.HandleFunc("POST /api/schedules", h.schedules.Create)
	mux.HandleFunc("GET /api/schedules", h.schedules.List)
	mux.HandleFunc("PUT /api/schedules/{id}", h.schedules.Update)
	mux.HandleFunc("DELETE /api/schedules/{id}", h.schedules.Delete)

	mux.HandleFunc("POST /api/stats/completion", h.stats.Completion)
	mux.HandleFunc("POST /api/stats/force-quit", h.stats.ForceQuit)
	mux.HandleFunc("GET /api/stats/summary", h.stats.Summary)
	mux.HandleFunc("GET /api/stats/daily/{date}", h.stats.Daily)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(validator),
	)(mux)
}
