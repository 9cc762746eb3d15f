// Package synchdl exposes the manual sync trigger endpoints.
package synchdl

import (
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "fieldpulse/internal/api/base/handler"
	attendancesvc "fieldpulse/internal/api/attendance/service"
	clientsvc "fieldpulse/internal/api/client/service"
	employeesvc "fieldpulse/internal/api/employee/service"
	eodsvc "fieldpulse/internal/api/eod/service"
	syncsvc "fieldpulse/internal/api/sync/service"
	tasksvc "fieldpulse/internal/api/task/service"
	"fieldpulse/internal/common"
	"fieldpulse/internal/utility"
)

// invalidWindow wraps a date parse failure as a validation error.
func invalidWindow(err error) error {
	return common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil)
}

// SyncHandler serves the per-entity and full sync triggers.
type SyncHandler struct {
	orchestrator *syncsvc.SyncService
	employees    *employeesvc.EmployeeService
	clients      *clientsvc.ClientService
	tasks        *tasksvc.TaskService
	eod          *eodsvc.EodService
	attendance   *attendancesvc.AttendanceService
}

// NewSyncHandler creates the handler.
func NewSyncHandler(
	orchestrator *syncsvc.SyncService,
	employees *employeesvc.EmployeeService,
	clients *clientsvc.ClientService,
	tasks *tasksvc.TaskService,
	eod *eodsvc.EodService,
	attendance *attendancesvc.AttendanceService,
) *SyncHandler {
	return &SyncHandler{
		orchestrator: orchestrator,
		employees:    employees,
		clients:      clients,
		tasks:        tasks,
		eod:          eod,
		attendance:   attendance,
	}
}

// dateWindow reads the start/end query parameters, defaulting both to
// today so a bare trigger syncs the current day. Invalid dates pass
// through and fail validation at the service.
func dateWindow(c fiber.Ctx) (string, string, error) {
	today := time.Now().UTC().Format("2006-01-02")
	start := c.Query("start", today)
	end := c.Query("end", today)

	if _, err := utility.ParseDateParam(start); err != nil {
		return "", "", err
	}
	if _, err := utility.ParseDateParam(end); err != nil {
		return "", "", err
	}
	return start, end, nil
}

// Employees triggers the employee sync.
func (h *SyncHandler) Employees(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		stats, err := h.employees.Sync(c.Context())
		return basehdl.HandleResponse(c, stats, err)
	})
}

// Clients triggers the client sync.
func (h *SyncHandler) Clients(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		stats, err := h.clients.Sync(c.Context())
		return basehdl.HandleResponse(c, stats, err)
	})
}

// Tasks triggers the task sync for a date window.
func (h *SyncHandler) Tasks(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		start, end, err := dateWindow(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, invalidWindow(err))
		}
		stats, err := h.tasks.Sync(c.Context(), start, end, c.Query("customTaskName"))
		return basehdl.HandleResponse(c, stats, err)
	})
}

// Eod triggers the EOD summary sync for a date window.
func (h *SyncHandler) Eod(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		start, end, err := dateWindow(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, invalidWindow(err))
		}
		stats, err := h.eod.Sync(c.Context(), start, end)
		return basehdl.HandleResponse(c, stats, err)
	})
}

// Attendance triggers the attendance sync for a date window.
func (h *SyncHandler) Attendance(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		start, end, err := dateWindow(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, invalidWindow(err))
		}
		stats, err := h.attendance.Sync(c.Context(), start, end)
		return basehdl.HandleResponse(c, stats, err)
	})
}

// All triggers the sequential full sync run.
func (h *SyncHandler) All(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		start, end, err := dateWindow(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, invalidWindow(err))
		}
		report := h.orchestrator.SyncAll(c.Context(), start, end)
		return basehdl.HandleResponse(c, report, nil)
	})
}
