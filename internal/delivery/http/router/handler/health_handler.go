package handler

import (
	"context"
	"log/slog"
	"net/http"

	"matcha/internal/delivery/http/response"
	"matcha/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// HealthHandler exposes readiness probes that touch shared infrastructure.
type HealthHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(db *gorm.DB, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Database pings the relational store through the pool.
func (h *HealthHandler) Database(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		h.logger.Error("Failed to resolve sql.DB for health probe", slog.Any("error", err))

		return response.InternalServerError(c, "DATABASE_UNAVAILABLE", "database unavailable")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		h.logger.Error("Database health probe failed", slog.Any("error", err))

		return response.InternalServerError(c, "DATABASE_UNAVAILABLE", "database unavailable")
	}

	return response.Success(c, http.StatusOK, map[string]string{"database": "ok"}, "")
}
