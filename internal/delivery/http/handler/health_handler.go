package handler

import (
	"context"
	"time"

	"balikerja/internal/database"
	"balikerja/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db     database.DB
	pinger interface{ Ping(ctx context.Context) error }
}

func NewHealthHandler(db database.DB, cachePinger interface{ Ping(ctx context.Context) error }) *HealthHandler {
	return &HealthHandler{db: db, pinger: cachePinger}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if h.db == nil {
		dbStatus = "not configured"
	} else if err := h.db.Ping(ctx); err != nil {
		dbStatus = "down"
	}

	cacheStatus := "ok"
	if h.pinger == nil {
		cacheStatus = "not configured"
	} else if err := h.pinger.Ping(ctx); err != nil {
		// The cache is fail-open everywhere else, so it degrades the
		// health report without failing it.
		cacheStatus = "down"
	}

	status := fiber.StatusOK
	if dbStatus == "down" {
		status = fiber.StatusServiceUnavailable
	}

	return response.Success(c, status, response.DefaultMessageForStatus(status), fiber.Map{
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
