// Package handlers provides HTTP request handlers for the service.
package handlers

import (
	"net/http"
	"runtime"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/rashi-tree-guide/internal/ports"
)

// BuildInfo describes the running binary and the catalog it was built with.
// Version, Commit and BuildTime are injected with ldflags.
type BuildInfo struct {
	Version   string       `json:"version"`
	Commit    string       `json:"commit"`
	BuildTime string       `json:"buildTime"`
	GoVersion string       `json:"goVersion"`
	Catalog   *CatalogInfo `json:"catalog,omitempty"`
}

// CatalogInfo counts what the embedded catalog ships.
type CatalogInfo struct {
	Rashis int `json:"rashis"`
	Trees  int `json:"trees"`
}

// NewBuildInfo creates a BuildInfo with the Go version filled in.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// WithCatalog returns a copy of b that also reports catalog sizes.
func (b BuildInfo) WithCatalog(rashis, trees int) BuildInfo {
	b.Catalog = &CatalogInfo{Rashis: rashis, Trees: trees}
	return b
}

// HealthHandler serves the /-/ endpoints.
type HealthHandler struct {
	registry  ports.HealthRegistry
	buildInfo BuildInfo
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(registry ports.HealthRegistry, buildInfo BuildInfo) *HealthHandler {
	return &HealthHandler{
		registry:  registry,
		buildInfo: buildInfo,
	}
}

type livenessResponse struct {
	Status string `json:"status"`
}

// Liveness answers 200 while the process runs. Downstreams are not consulted.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, livenessResponse{Status: "ok"})
}

type readinessResponse struct {
	Status  string                        `json:"status"`
	Failing []string                      `json:"failing,omitempty"`
	Checks  map[string]*ports.CheckResult `json:"checks,omitempty"`
}

// Readiness runs every registered check (geocoder and astrology breakers,
// catalog integrity) and answers 503 when any of them fails. Failing check
// names are listed sorted so a kiosk operator sees them at a glance.
func (h *HealthHandler) Readiness(c *gin.Context) {
	result := h.registry.CheckAll(c.Request.Context())

	resp := readinessResponse{
		Status:  string(result.Status),
		Failing: failingChecks(result.Checks),
		Checks:  result.Checks,
	}

	status := http.StatusOK
	if result.Status == ports.HealthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, resp)
}

func failingChecks(checks map[string]*ports.CheckResult) []string {
	var names []string
	for name, res := range checks {
		if res != nil && res.Status == ports.HealthStatusUnhealthy {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	return names
}

// BuildInfoHandler serves /-/build.
func (h *HealthHandler) BuildInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildInfo)
}

// MetricsHandler exposes the rashi_* Prometheus collectors.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// RegisterHealthRoutes registers live, ready, build and metrics on rg.
func (h *HealthHandler) RegisterHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/live", h.Liveness)
	rg.GET("/ready", h.Readiness)
	rg.GET("/build", h.BuildInfoHandler)
	rg.GET("/metrics", gin.WrapH(MetricsHandler()))
}

// RegisterHealthRoutesOnEngine mounts the health routes under /-.
func (h *HealthHandler) RegisterHealthRoutesOnEngine(engine *gin.Engine) {
	h.RegisterHealthRoutes(engine.Group("/-"))
}
