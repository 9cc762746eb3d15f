// Package router registers the EOD summary routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	eodhdl "fieldpulse/internal/api/eod/handler"
	"fieldpulse/internal/api/middleware"
)

// Register wires the EOD summary routes onto v1.
func Register(v1 fiber.Router, h *eodhdl.EodHandler, auth *middleware.Auth) {
	group := v1.Group("/eod-summaries")
	group.Get("/", h.List, auth.RequireRoles(middleware.RoleAdmin, middleware.RoleManager))
}
