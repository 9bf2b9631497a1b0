package handler

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler reports whether the service and its database are reachable.
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Database is unreachable", nil)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
