// Package eodhdl exposes the EOD summary listing endpoint.
package eodhdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "fieldpulse/internal/api/base/handler"
	eodsvc "fieldpulse/internal/api/eod/service"
)

// EodHandler serves EOD summary queries.
type EodHandler struct {
	service *eodsvc.EodService
}

// NewEodHandler creates the handler.
func NewEodHandler(service *eodsvc.EodService) *EodHandler {
	return &EodHandler{service: service}
}

// List returns EOD summaries filtered by employee and date window.
func (h *EodHandler) List(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		limit, _ := strconv.ParseInt(c.Query("limit", "50"), 10, 64)
		skip, _ := strconv.ParseInt(c.Query("skip", "0"), 10, 64)

		result, err := h.service.List(c.Context(),
			c.Query("employeeID"),
			c.Query("start"),
			c.Query("end"),
			limit, skip,
		)
		return basehdl.HandleResponse(c, result, err)
	})
}
