package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http/dto"
	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http/handlers"
	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http/middleware"
	"github.com/jsamuelsen/rashi-tree-guide/internal/platform/config"
	"github.com/jsamuelsen/rashi-tree-guide/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds API requests when no timeout is configured.
// It leaves room for one geocoder call and one astrology call.
const DefaultRequestTimeout = 25 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	Logger     *slog.Logger
	AuthConfig *config.AuthConfig
	AppConfig  *config.AppConfig

	HealthHandler   *handlers.HealthHandler
	RashiHandler    *handlers.RashiHandler
	ComputeHandler  *handlers.ComputeHandler
	OperatorHandler *handlers.OperatorHandler

	// Timeout is the API request deadline; zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - kiosk session id forwarded downstream
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - /api/v1 only
//
// Route groups:
//   - /-/ (internal): health endpoints, no auth
//   - /api/v1/ (public API): catalog and compute
//   - /api/v1/operator: operator role when auth is enabled
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.AppConfig.Name)...)
	engine.Use(middleware.Logging(cfg.Logger))

	engine.NoRoute(func(c *gin.Context) {
		dto.AbortWithCode(c, dto.ErrorCodeNotFound, "route "+c.Request.Method+" "+c.Request.URL.Path+" not found")
	})

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	apiV1.Use(middleware.Timeout(cfg.Timeout))

	setupAPIRoutes(apiV1, cfg)
}

// setupAPIRoutes registers business API routes.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.RashiHandler != nil {
		cfg.RashiHandler.RegisterRashiRoutes(rg)
	}

	if cfg.ComputeHandler != nil {
		cfg.ComputeHandler.RegisterComputeRoutes(rg)
	}

	if cfg.OperatorHandler != nil {
		operator := rg.Group("/operator", middleware.Operator(cfg.AuthConfig)...)
		cfg.OperatorHandler.RegisterOperatorRoutes(operator)
	}
}

// NewDefaultRouterConfig creates a RouterConfig from loaded configuration.
func NewDefaultRouterConfig(logger *slog.Logger, cfg *config.Config) RouterConfig {
	timeout := cfg.Server.RequestTimeout
	if timeout == 0 {
		timeout = DefaultRequestTimeout
	}

	return RouterConfig{
		Logger:     logger,
		AuthConfig: &cfg.Auth,
		AppConfig:  &cfg.App,
		Timeout:    timeout,
	}
}
