// Package router registers the webhook ingestion routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"fieldpulse/config"
	"fieldpulse/internal/api/middleware"
	webhookhdl "fieldpulse/internal/api/webhook/handler"
)

// Register wires the webhook routes. They sit outside the JWT guard and
// use the shared-secret header instead.
func Register(app fiber.Router, cfg *config.Configuration, h *webhookhdl.WebhookHandler) {
	group := app.Group("/webhooks/unolo", middleware.WebhookSecret(cfg))
	group.Post("/tasks", h.Tasks)
	group.Post("/clients", h.Clients)
}
