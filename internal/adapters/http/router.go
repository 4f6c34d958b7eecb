package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/daily-motivation/internal/adapters/http/handlers"
	"github.com/jsamuelsen/daily-motivation/internal/adapters/http/middleware"
	"github.com/jsamuelsen/daily-motivation/internal/platform/config"
	"github.com/jsamuelsen/daily-motivation/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AuthConfig selects the profile header and whether it is mandatory.
	AuthConfig *config.AuthConfig

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// Tracing installs the otelgin middleware.
	Tracing bool

	// Timeout bounds every /api/v1 request.
	Timeout time.Duration

	HealthHandler       *handlers.HealthHandler
	QuoteHandler        *handlers.QuoteHandler
	CatalogHandler      *handlers.CatalogHandler
	PreferencesHandler  *handlers.PreferencesHandler
	ShareHandler        *handlers.ShareHandler
	NotificationHandler *handlers.NotificationHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Logger - seed the request logger
//  3. Request ID - generate/extract request ID
//  4. Correlation ID - handle distributed tracing correlation
//  5. OpenTelemetry - tracing and metrics
//  6. Logging - request logging (skips health endpoints)
//
// Route groups:
//   - /-/ (internal): Health endpoints, no profile, no timeout
//   - /api/v1/ (public API): timeout, then profile resolution
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.Logger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)

	if cfg.Tracing && cfg.AppConfig != nil {
		engine.Use(telemetry.TracingMiddleware(cfg.AppConfig.Name))
	}

	engine.Use(
		telemetry.Middleware(),
		middleware.Logging(),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	apiV1.Use(
		middleware.Timeout(cfg.Timeout),
		middleware.Profile(cfg.AuthConfig),
	)

	setupAPIRoutes(apiV1, cfg)
}

// setupAPIRoutes registers the business endpoints whose handlers are set.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(rg)
	}

	if cfg.CatalogHandler != nil {
		cfg.CatalogHandler.RegisterCatalogRoutes(rg)
	}

	if cfg.PreferencesHandler != nil {
		cfg.PreferencesHandler.RegisterPreferencesRoutes(rg)
	}

	if cfg.ShareHandler != nil {
		cfg.ShareHandler.RegisterShareRoutes(rg)
	}

	if cfg.NotificationHandler != nil {
		cfg.NotificationHandler.RegisterNotificationRoutes(rg)
	}
}

// SetupMinimalRouter sets up a minimal router with just health endpoints.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(),
		middleware.Logger(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with the default timeout and
// no business handlers.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	authCfg *config.AuthConfig,
	healthHandler *handlers.HealthHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AuthConfig:    authCfg,
		AppConfig:     appCfg,
		HealthHandler: healthHandler,
		Timeout:       DefaultRequestTimeout,
	}
}
