package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/parun-tech/resume-checker/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, analyze *handlers.AnalyzeHandler, checks *handlers.ChecksHandler) {
	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	api.Post("/analyze", analyze.Analyze)

	// History of past checks
	api.Get("/checks", checks.List)
	api.Get("/checks/:id", checks.Get)
}
