// Package empanalyticshdl exposes the presence metric endpoints.
package empanalyticshdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "fieldpulse/internal/api/base/handler"
	empanalyticssvc "fieldpulse/internal/api/empanalytics/service"
	"fieldpulse/internal/api/middleware"
	"fieldpulse/internal/common"
)

// EmpAnalyticsHandler serves the presence queries.
type EmpAnalyticsHandler struct {
	service *empanalyticssvc.EmpAnalyticsService
}

// NewEmpAnalyticsHandler creates the handler.
func NewEmpAnalyticsHandler(service *empanalyticssvc.EmpAnalyticsService) *EmpAnalyticsHandler {
	return &EmpAnalyticsHandler{service: service}
}

// window reads the required start/end query parameters.
func window(c fiber.Ctx) (string, string, error) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		return "", "", common.NewError(common.ErrCodeValidationInput,
			"start and end query parameters are required", common.StatusBadRequest, nil)
	}
	return start, end, nil
}

// ForEmployee returns one employee's presence report. Sales reps are
// pinned to their own report.
func (h *EmpAnalyticsHandler) ForEmployee(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		start, end, err := window(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		empID := middleware.ScopedEmployeeID(c, c.Query("empID"))
		if empID == "" {
			return basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput,
				"empID query parameter is required", common.StatusBadRequest, nil))
		}

		report, err := h.service.ForEmployee(c.Context(), empID, start, end)
		return basehdl.HandleResponse(c, report, err)
	})
}

// ForAllEmployees returns the team presence rollup.
func (h *EmpAnalyticsHandler) ForAllEmployees(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		start, end, err := window(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		team, err := h.service.ForAllEmployees(c.Context(), start, end)
		return basehdl.HandleResponse(c, team, err)
	})
}
