package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const healthTimeout = 2 * time.Second

// Check reports whether a dependency is reachable.
type Check func(ctx context.Context) error

type HealthHandler struct {
	database Check
	redis    Check
}

// NewHealthHandler takes a nil redis check when Redis is not configured.
func NewHealthHandler(database, redis Check) *HealthHandler {
	return &HealthHandler{database: database, redis: redis}
}

func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	dbStatus := "healthy"
	if err := h.database(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "disabled"
	if h.redis != nil {
		redisStatus = "healthy"
		if err := h.redis(ctx); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := "healthy"
	if dbStatus != "healthy" || redisStatus == "unhealthy" {
		status = "degraded"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  dbStatus,
		"redis":     redisStatus,
	})
}
