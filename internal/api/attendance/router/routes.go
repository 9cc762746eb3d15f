// Package router registers the attendance routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	attendancehdl "fieldpulse/internal/api/attendance/handler"
	"fieldpulse/internal/api/middleware"
)

// Register wires the attendance routes onto v1.
func Register(v1 fiber.Router, h *attendancehdl.AttendanceHandler, auth *middleware.Auth) {
	group := v1.Group("/attendance")
	group.Get("/", h.List, auth.RequireRoles(middleware.RoleAdmin, middleware.RoleManager))
}
