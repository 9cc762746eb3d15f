// Package router registers the sync trigger routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"fieldpulse/internal/api/middleware"
	synchdl "fieldpulse/internal/api/sync/handler"
)

// Register wires the sync triggers onto v1. All of them are admin only.
func Register(v1 fiber.Router, h *synchdl.SyncHandler, auth *middleware.Auth) {
	group := v1.Group("/sync", auth.RequireRoles(middleware.RoleAdmin))
	group.Post("/employees", h.Employees)
	group.Post("/clients", h.Clients)
	group.Post("/tasks", h.Tasks)
	group.Post("/eod", h.Eod)
	group.Post("/attendance", h.Attendance)
	group.Post("/all", h.All)
}
