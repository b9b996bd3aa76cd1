package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/crm-service/internal/api/http/handlers"
	"github.com/spec-kit/crm-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Enquiries      *handlers.EnquiriesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	enquiries := api.Group("/enquiries")
	enquiries.Post("/", cfg.Enquiries.Submit)
	enquiries.Get("/public", cfg.Enquiries.ListPublic)

	// Literal segments are registered before /:id so they are not captured
	// as ids.
	enquiries.Get("/mine", cfg.AuthMiddleware.Handle, cfg.Enquiries.ListMine)
	enquiries.Get("/:id", cfg.AuthMiddleware.Handle, cfg.Enquiries.Get)
	enquiries.Post("/:id/claim", cfg.AuthMiddleware.Handle, cfg.Enquiries.Claim)
}
