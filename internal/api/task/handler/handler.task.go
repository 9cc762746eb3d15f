// Package taskhdl exposes the task listing endpoint.
package taskhdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "fieldpulse/internal/api/base/handler"
	tasksvc "fieldpulse/internal/api/task/service"
	"fieldpulse/internal/api/middleware"
)

// TaskHandler serves task queries.
type TaskHandler struct {
	service *tasksvc.TaskService
}

// NewTaskHandler creates the handler.
func NewTaskHandler(service *tasksvc.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List returns tasks filtered by employee and date window. A sales rep
// is pinned to their own employee ID.
func (h *TaskHandler) List(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		limit, _ := strconv.ParseInt(c.Query("limit", "50"), 10, 64)
		skip, _ := strconv.ParseInt(c.Query("skip", "0"), 10, 64)

		empID := middleware.ScopedEmployeeID(c, c.Query("empID"))

		result, err := h.service.List(c.Context(),
			empID,
			c.Query("employeeID"),
			c.Query("start"),
			c.Query("end"),
			limit, skip,
		)
		return basehdl.HandleResponse(c, result, err)
	})
}
