// Package router registers the employee domain routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	employeehdl "fieldpulse/internal/api/employee/handler"
	"fieldpulse/internal/api/middleware"
)

// Register wires the employee routes onto v1.
func Register(v1 fiber.Router, h *employeehdl.EmployeeHandler, auth *middleware.Auth) {
	group := v1.Group("/employees")
	group.Get("/", h.List, auth.RequireRoles(middleware.RoleAdmin, middleware.RoleManager))
	group.Get("/resolve", h.Resolve, auth.RequireRoles())
}
