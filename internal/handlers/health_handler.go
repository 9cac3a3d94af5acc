package handlers

import (
	"net/http"
	"time"

	"elliora-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db *gorm.DB
}

// NewHealthCheckHandler creates a new health check handler. The db is nil
// when transactions come from a remote source instead of the local store.
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck reports API liveness and, when a local store is configured,
// database connectivity.
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			errorResponse := errors.NewErrorResponse(
				errors.SystemDatabaseError,
				getTraceID(c),
				errors.WithDetails("Database connection failed"),
			)
			return c.JSON(http.StatusServiceUnavailable, errorResponse)
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
