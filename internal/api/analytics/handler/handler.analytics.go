// Package analyticshdl exposes the visit analytics endpoints.
package analyticshdl

import (
	"github.com/gofiber/fiber/v3"

	analyticssvc "fieldpulse/internal/api/analytics/service"
	basehdl "fieldpulse/internal/api/base/handler"
	"fieldpulse/internal/api/middleware"
	"fieldpulse/internal/common"
)

// AnalyticsHandler serves the visit analytics queries.
type AnalyticsHandler struct {
	service *analyticssvc.AnalyticsService
}

// NewAnalyticsHandler creates the handler.
func NewAnalyticsHandler(service *analyticssvc.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
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

// scopedEmpID reads the empID parameter with role scoping applied.
func scopedEmpID(c fiber.Ctx) (string, error) {
	empID := middleware.ScopedEmployeeID(c, c.Query("empID"))
	if empID == "" {
		return "", common.NewError(common.ErrCodeValidationInput,
			"empID query parameter is required", common.StatusBadRequest, nil)
	}
	return empID, nil
}

// Visits returns one employee's joined visits.
func (h *AnalyticsHandler) Visits(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		start, end, err := window(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		empID, err := scopedEmpID(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		visits, err := h.service.EmployeeVisits(c.Context(), empID, start, end, c.Query("category"))
		return basehdl.HandleResponse(c, visits, err)
	})
}

// AreaWise returns one employee's per-area coverage.
func (h *AnalyticsHandler) AreaWise(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		start, end, err := window(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		empID, err := scopedEmpID(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		coverage, err := h.service.AreaWise(c.Context(), empID, start, end, c.Query("category"))
		return basehdl.HandleResponse(c, coverage, err)
	})
}

// Buckets returns one employee's school category buckets.
func (h *AnalyticsHandler) Buckets(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		start, end, err := window(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		empID, err := scopedEmpID(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		buckets, err := h.service.Buckets(c.Context(), empID, start, end)
		return basehdl.HandleResponse(c, buckets, err)
	})
}

// Overview returns the team-wide admin rollup.
func (h *AnalyticsHandler) Overview(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		start, end, err := window(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		rows, err := h.service.Overview(c.Context(), start, end)
		return basehdl.HandleResponse(c, rows, err)
	})
}

// Drilldown returns one employee's visits narrowed by an overview
// filter.
func (h *AnalyticsHandler) Drilldown(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		start, end, err := window(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		visits, err := h.service.Drilldown(c.Context(), c.Query("empID"), start, end, c.Query("filter"))
		return basehdl.HandleResponse(c, visits, err)
	})
}
