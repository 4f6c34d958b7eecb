// Package handlers provides the HTTP request handlers: health probes and
// the quote, catalog, preference, share and reminder endpoints.
package handlers

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/daily-motivation/internal/ports"
)

// HealthStatusHeader repeats the readiness status for probes that ignore bodies.
const HealthStatusHeader = "X-Health-Status"

// BuildInfo is served on /-/build. Version, Commit and BuildTime come from
// ldflags.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// NewBuildInfo fills GoVersion from the running binary.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// HealthHandler serves the /-/ probe, build and metrics routes.
type HealthHandler struct {
	registry  ports.HealthRegistry
	buildInfo BuildInfo
	gatherer  prometheus.Gatherer
}

// NewHealthHandler exposes metrics from prometheus.DefaultGatherer; use
// WithGatherer when the collectors live in a private registry.
func NewHealthHandler(registry ports.HealthRegistry, buildInfo BuildInfo) *HealthHandler {
	return &HealthHandler{
		registry:  registry,
		buildInfo: buildInfo,
		gatherer:  prometheus.DefaultGatherer,
	}
}

// WithGatherer sets the registry /-/metrics reads from.
func (h *HealthHandler) WithGatherer(g prometheus.Gatherer) *HealthHandler {
	h.gatherer = g
	return h
}

type statusResponse struct {
	Status string `json:"status"`
}

type readinessResponse struct {
	Status string                        `json:"status"`
	Checks map[string]*ports.CheckResult `json:"checks,omitempty"`
}

// Liveness never looks at dependencies: a live process with every
// provider down still serves fallback quotes.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// Readiness answers 503 only when a critical check such as storage fails.
// Provider and notifier failures leave the service "degraded" with 200.
func (h *HealthHandler) Readiness(c *gin.Context) {
	result := h.registry.CheckAll(c.Request.Context())

	code := http.StatusOK
	if result.Status == ports.HealthStatusUnhealthy {
		code = http.StatusServiceUnavailable
	}

	c.Header(HealthStatusHeader, string(result.Status))
	c.JSON(code, readinessResponse{Status: string(result.Status), Checks: result.Checks})
}

func (h *HealthHandler) BuildInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildInfo)
}

// MetricsHandler serves the Prometheus text format for g.
func MetricsHandler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// RegisterHealthRoutes adds live, ready, build and metrics under rg.
func (h *HealthHandler) RegisterHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/live", h.Liveness)
	rg.GET("/ready", h.Readiness)
	rg.GET("/build", h.BuildInfoHandler)
	rg.GET("/metrics", gin.WrapH(MetricsHandler(h.gatherer)))
}

// RegisterHealthRoutesOnEngine mounts the routes under /-.
func (h *HealthHandler) RegisterHealthRoutesOnEngine(engine *gin.Engine) {
	h.RegisterHealthRoutes(engine.Group("/-"))
}
