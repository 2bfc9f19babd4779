package routes

import (
	"balikerja/internal/delivery/http/handler"
	"balikerja/internal/delivery/http/middleware"
	"balikerja/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health      *handler.HealthHandler
	jobs        *handler.JobHandler
	matching    *handler.MatchingHandler
	application *handler.ApplicationHandler

	auth *middleware.AuthMiddleware
	wsh  *ws.Handler
}

func NewRegistry(
	health *handler.HealthHandler,
	jobs *handler.JobHandler,
	matching *handler.MatchingHandler,
	application *handler.ApplicationHandler,
	auth *middleware.AuthMiddleware,
	wsHandler *ws.Handler,
) *Registry {
	return &Registry{
		health:      health,
		jobs:        jobs,
		matching:    matching,
		application: application,
		auth:        auth,
		wsh:         wsHandler,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.registerAPI(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	v1 := app.Group("/api").Group("/v1")

	if r.wsh != nil {
		v1.Get("/ws/applications", r.wsh.HandleApplicationEvents)
	}

	authed := v1.Group("", r.auth.Middleware())
	r.jobs.RegisterRoutes(authed)
	r.matching.RegisterRoutes(authed)
	r.application.RegisterRoutes(authed)
}
