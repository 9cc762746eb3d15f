// Package employeehdl exposes the employee directory and identity
// resolution endpoints.
package employeehdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "fieldpulse/internal/api/base/handler"
	employeesvc "fieldpulse/internal/api/employee/service"
	"fieldpulse/internal/common"
)

// EmployeeHandler serves directory and resolution queries.
type EmployeeHandler struct {
	service *employeesvc.EmployeeService
}

// NewEmployeeHandler creates the handler.
func NewEmployeeHandler(service *employeesvc.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List returns the full employee directory.
func (h *EmployeeHandler) List(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		employees, err := h.service.List(c.Context())
		return basehdl.HandleResponse(c, employees, err)
	})
}

// Resolve maps a loosely-typed identifier or display name to the
// canonical empID. A name miss is an empty result, not an error.
func (h *EmployeeHandler) Resolve(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		candidate := c.Query("candidate")
		name := c.Query("name")

		if candidate == "" && name == "" {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"candidate or name query parameter is required",
				common.StatusBadRequest,
				nil,
			))
		}

		if name != "" {
			emp, err := h.service.ResolveByName(c.Context(), name)
			if err != nil {
				return basehdl.HandleResponse(c, nil, err)
			}
			if emp == nil {
				return basehdl.HandleResponse(c, fiber.Map{"resolved": false}, nil)
			}
			return basehdl.HandleResponse(c, fiber.Map{
				"resolved": true,
				"empID":    emp.EmpID,
				"empName":  emp.EmpName,
			}, nil)
		}

		resolution, err := h.service.ResolveCanonicalID(c.Context(), candidate)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, resolution, nil)
	})
}
