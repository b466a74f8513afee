package health

import (
	"encoding/json"
	"net/http"
	"time"

	"fintrack/pkg/logger"
)

// ArtifactStatus reports whether the model/encoder artifacts are loaded
type ArtifactStatus interface {
	Loaded() bool
}

// CatalogStatus reports whether the fund catalog snapshot has been fetched
type CatalogStatus interface {
	Warm() bool
}

// Handler provides health check endpoints
type Handler struct {
	log         *logger.Logger
	artifacts   ArtifactStatus
	catalog     CatalogStatus
	startTime   time.Time
	serviceName string
	version     string
}

// New creates a new health check handler
func New(
	log *logger.Logger,
	artifacts ArtifactStatus,
	catalog CatalogStatus,
	serviceName string,
	version string,
) *Handler {
	return &Handler{
		log:         log,
		artifacts:   artifacts,
		catalog:     catalog,
		startTime:   time.Now(),
		serviceName: serviceName,
		version:     version,
	}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status    string                     `json:"status"` // "healthy", "degraded", "unhealthy"
	Service   string                     `json:"service"`
	Version   string                     `json:"version"`
	Uptime    string                     `json:"uptime"`
	Timestamp string                     `json:"timestamp"`
	Checks    map[string]ComponentHealth `json:"checks"`
}

// ComponentHealth represents health of a single component
type ComponentHealth struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// HandleLiveness returns 200 OK if service is running
// Used by Kubernetes liveness probe
func (h *Handler) HandleLiveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "alive",
	})
}

// HandleReadiness checks if service is ready to accept traffic.
// The classifiers and encoders must be loaded; the catalog cache is only
// reported, since it warms lazily on the first fund match.
func (h *Handler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	checks := map[string]ComponentHealth{
		"models":       h.checkArtifacts(),
		"fund_catalog": h.checkCatalog(),
	}

	status := HealthStatus{
		Status:    "healthy",
		Service:   h.serviceName,
		Version:   h.version,
		Uptime:    time.Since(h.startTime).String(),
		Timestamp: time.Now().Format(time.RFC3339),
		Checks:    checks,
	}

	statusCode := http.StatusOK
	if checks["models"].Status != "healthy" {
		status.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
		h.log.Warnw("Readiness check failed", "checks", checks)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(status)
}

// HandleHealth returns detailed health status (includes all checks)
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	checks := map[string]ComponentHealth{
		"models":       h.checkArtifacts(),
		"fund_catalog": h.checkCatalog(),
	}

	status := HealthStatus{
		Status:    "healthy",
		Service:   h.serviceName,
		Version:   h.version,
		Uptime:    time.Since(h.startTime).String(),
		Timestamp: time.Now().Format(time.RFC3339),
		Checks:    checks,
	}

	statusCode := http.StatusOK
	if checks["models"].Status != "healthy" {
		status.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	} else if checks["fund_catalog"].Status != "healthy" {
		// Cold catalog means degraded enrichment, not an outage
		status.Status = "degraded"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(status)
}

func (h *Handler) checkArtifacts() ComponentHealth {
	if h.artifacts == nil || !h.artifacts.Loaded() {
		return ComponentHealth{
			Status: "unhealthy",
			Detail: "model artifacts not loaded",
		}
	}
	return ComponentHealth{Status: "healthy"}
}

func (h *Handler) checkCatalog() ComponentHealth {
	if h.catalog == nil || !h.catalog.Warm() {
		return ComponentHealth{
			Status: "cold",
			Detail: "fund catalog not fetched yet",
		}
	}
	return ComponentHealth{Status: "healthy"}
}
