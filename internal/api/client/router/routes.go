// Package router registers the client domain routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	clienthdl "fieldpulse/internal/api/client/handler"
	"fieldpulse/internal/api/middleware"
)

// Register wires the client routes onto v1.
func Register(v1 fiber.Router, h *clienthdl.ClientHandler, auth *middleware.Auth) {
	group := v1.Group("/clients")
	group.Get("/", h.List, auth.RequireRoles(middleware.RoleAdmin, middleware.RoleManager))
	group.Get("/by-employee", h.ForEmployee, auth.RequireRoles())
	group.Get("/grouped", h.Grouped, auth.RequireRoles())
}
