// Package router registers the task domain routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"fieldpulse/internal/api/middleware"
	taskhdl "fieldpulse/internal/api/task/handler"
)

// Register wires the task routes onto v1.
func Register(v1 fiber.Router, h *taskhdl.TaskHandler, auth *middleware.Auth) {
	group := v1.Group("/tasks")
	group.Get("/", h.List, auth.RequireRoles())
}
