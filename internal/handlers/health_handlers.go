package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"invoicepress/internal/services"
)

// HealthHandlers handles health check and monitoring endpoints
type HealthHandlers struct {
	storage StorageChecker
	version string
}

// StorageChecker is the slice of the storage service health checks need.
type StorageChecker interface {
	DocumentExists(ctx context.Context, bucketName, objectName string) (bool, error)
}

// NewHealthHandlers creates a new health handlers instance
func NewHealthHandlers(storage services.StorageService, version string) *HealthHandlers {
	return &HealthHandlers{storage: storage, version: version}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Version   string            `json:"version"`
}

// HealthCheck handles GET /healthz
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	health := &HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  make(map[string]string),
		Version:   h.version,
	}

	if h.storage == nil {
		health.Services["storage"] = "not configured"
	} else {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()
		// A stat on a probe object answers "reachable" without mutating anything.
		if _, err := h.storage.DocumentExists(ctx, "invoicepress-health", "probe"); err != nil {
			health.Services["storage"] = "unhealthy"
			health.Status = "degraded"
		} else {
			health.Services["storage"] = "healthy"
		}
	}

	code := http.StatusOK
	if health.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, health)
}
