// Package router registers the auth routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	authhdl "fieldpulse/internal/api/auth/handler"
	"fieldpulse/internal/api/middleware"
)

// Register wires the auth routes onto v1.
func Register(v1 fiber.Router, h *authhdl.AuthHandler, auth *middleware.Auth) {
	group := v1.Group("/auth")
	group.Post("/login", h.Login)
	group.Post("/register", h.Register, auth.RequireRoles(middleware.RoleAdmin))
	group.Get("/me", h.Me, auth.RequireRoles())
}
