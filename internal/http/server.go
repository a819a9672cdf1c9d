package http

import (
	"context"
	"net/http"
	"time"

	"budgetd/internal/config"
	"budgetd/internal/http/middleware"
	"budgetd/internal/metrics"
	"budgetd/internal/repository"
	"budgetd/internal/service/transfer"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

type Server struct{ e *echo.Echo }

// NewServer wires repositories, the transfer service, and all routes.
// rds may be nil; rate limiting is skipped without it.
func NewServer(cfg config.Config, db *sqlx.DB, rds *redis.Client) *Server {
	envsRepo := repository.NewEnvelopesRepository(db)
	transferSvc := transfer.New(db, envsRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMid.Recover(), echoMid.Logger(), middleware.RequestID())

	reg := prometheus.NewRegistry()
	metrics.MustRegister(reg)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// health
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "Hello World") })

	rlMW := middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Redis:          rds,
		RPS:            cfg.RateLimit.RPS,
		KeyPrefix:      "rl:ip:",
		Window:         time.Second,
		RetryAfterHint: true,
	})

	// routes
	env := e.Group("/envelopes", rlMW)
	env.GET("", listEnvelopesHandler(envsRepo))
	env.POST("", createEnvelopeHandler(envsRepo))
	env.GET("/:id", getEnvelopeHandler(envsRepo))
	env.PUT("/:id", updateEnvelopeHandler(envsRepo))
	env.DELETE("/:id", deleteEnvelopeHandler(envsRepo))
	env.POST("/transfer/:fromID/:toID", transferHandler(transferSvc))

	return &Server{e: e}
}

func (s *Server) Start(addr string) error            { return s.e.Start(addr) }
func (s *Server) Shutdown(ctx context.Context) error { return s.e.Shutdown(ctx) }

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.e }
