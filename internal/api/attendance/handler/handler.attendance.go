// Package attendancehdl exposes the raw attendance listing endpoint.
package attendancehdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	attendancesvc "fieldpulse/internal/api/attendance/service"
	basehdl "fieldpulse/internal/api/base/handler"
)

// AttendanceHandler serves attendance queries.
type AttendanceHandler struct {
	service *attendancesvc.AttendanceService
}

// NewAttendanceHandler creates the handler.
func NewAttendanceHandler(service *attendancesvc.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// List returns attendance records filtered by user and date window.
func (h *AttendanceHandler) List(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		limit, _ := strconv.ParseInt(c.Query("limit", "50"), 10, 64)
		skip, _ := strconv.ParseInt(c.Query("skip", "0"), 10, 64)

		result, err := h.service.List(c.Context(),
			c.Query("userID"),
			c.Query("start"),
			c.Query("end"),
			limit, skip,
		)
		return basehdl.HandleResponse(c, result, err)
	})
}
