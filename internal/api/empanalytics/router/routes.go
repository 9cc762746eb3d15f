// Package router registers the presence metric routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	empanalyticshdl "fieldpulse/internal/api/empanalytics/handler"
	"fieldpulse/internal/api/middleware"
)

// Register wires the presence routes onto v1.
func Register(v1 fiber.Router, h *empanalyticshdl.EmpAnalyticsHandler, auth *middleware.Auth) {
	group := v1.Group("/presence")
	group.Get("/employee", h.ForEmployee, auth.RequireRoles())
	group.Get("/team", h.ForAllEmployees, auth.RequireRoles(middleware.RoleAdmin, middleware.RoleManager))
}
