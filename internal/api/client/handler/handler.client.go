// Package clienthdl exposes the client listing and grouping endpoints.
package clienthdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "fieldpulse/internal/api/base/handler"
	clientsvc "fieldpulse/internal/api/client/service"
	"fieldpulse/internal/api/middleware"
	"fieldpulse/internal/common"
)

// ClientHandler serves client queries.
type ClientHandler struct {
	service *clientsvc.ClientService
}

// NewClientHandler creates the handler.
func NewClientHandler(service *clientsvc.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List returns clients, optionally filtered by category, area and owner.
func (h *ClientHandler) List(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		limit, _ := strconv.ParseInt(c.Query("limit", "50"), 10, 64)
		skip, _ := strconv.ParseInt(c.Query("skip", "0"), 10, 64)

		result, err := h.service.List(c.Context(),
			c.Query("category"),
			c.Query("area"),
			c.Query("visibleTo"),
			limit, skip,
		)
		return basehdl.HandleResponse(c, result, err)
	})
}

// ForEmployee returns the clients owned by one employee. A sales rep is
// pinned to their own empID regardless of the query parameter.
func (h *ClientHandler) ForEmployee(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		empID := middleware.ScopedEmployeeID(c, c.Query("empID"))
		if empID == "" {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"empID query parameter is required",
				common.StatusBadRequest,
				nil,
			))
		}

		clients, err := h.service.ClientsForEmployee(c.Context(), empID, c.Query("category"))
		return basehdl.HandleResponse(c, clients, err)
	})
}

// Grouped returns one employee's clients grouped by area or material.
func (h *ClientHandler) Grouped(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		empID := middleware.ScopedEmployeeID(c, c.Query("empID"))
		if empID == "" {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"empID query parameter is required",
				common.StatusBadRequest,
				nil,
			))
		}

		dimension := c.Query("by", clientsvc.GroupByArea)
		if dimension != clientsvc.GroupByArea && dimension != clientsvc.GroupByMaterial {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"by must be area or material",
				common.StatusBadRequest,
				nil,
			))
		}

		grouped, err := h.service.GroupedClients(c.Context(), empID, dimension, c.Query("category"))
		return basehdl.HandleResponse(c, grouped, err)
	})
}
