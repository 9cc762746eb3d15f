// Package syncsvc orchestrates full sync runs across all entities.
package syncsvc

import (
	"context"

	"github.com/google/uuid"

	attendancesvc "fieldpulse/internal/api/attendance/service"
	basemodels "fieldpulse/internal/api/base/models"
	clientsvc "fieldpulse/internal/api/client/service"
	employeesvc "fieldpulse/internal/api/employee/service"
	eodsvc "fieldpulse/internal/api/eod/service"
	tasksvc "fieldpulse/internal/api/task/service"
	"fieldpulse/internal/logger"
	"fieldpulse/internal/notification"
)

// RunReport is the outcome of a full sync run. Entities holds per-entity
// stats in run order; Failed names the entities whose fetch failed
// outright (per-record errors are inside the stats).
type RunReport struct {
	RunID    string                          `json:"run_id"`
	Entities map[string]basemodels.SyncStats `json:"entities"`
	Failed   []string                        `json:"failed,omitempty"`
}

// SyncService runs the entity syncs, alone or as one sequential run.
type SyncService struct {
	employees  *employeesvc.EmployeeService
	clients    *clientsvc.ClientService
	tasks      *tasksvc.TaskService
	eod        *eodsvc.EodService
	attendance *attendancesvc.AttendanceService
	mailer     *notification.Mailer
}

// NewSyncService creates the orchestrator. mailer may be nil.
func NewSyncService(
	employees *employeesvc.EmployeeService,
	clients *clientsvc.ClientService,
	tasks *tasksvc.TaskService,
	eod *eodsvc.EodService,
	attendance *attendancesvc.AttendanceService,
	mailer *notification.Mailer,
) *SyncService {
	return &SyncService{
		employees:  employees,
		clients:    clients,
		tasks:      tasks,
		eod:        eod,
		attendance: attendance,
		mailer:     mailer,
	}
}

// SyncAll runs every entity sync sequentially: employees and clients
// first so the windowed entities can join against fresh identities.
// A failed entity is reported and alerted but never stops the run.
func (s *SyncService) SyncAll(ctx context.Context, start, end string) RunReport {
	log := logger.GetSyncLogger()
	report := RunReport{
		RunID:    uuid.NewString(),
		Entities: make(map[string]basemodels.SyncStats),
	}

	log.WithFields(map[string]interface{}{
		"runID": report.RunID,
		"start": start,
		"end":   end,
	}).Info("Full sync run started")

	steps := []struct {
		name string
		run  func() (basemodels.SyncStats, error)
	}{
		{"employees", func() (basemodels.SyncStats, error) { return s.employees.Sync(ctx) }},
		{"clients", func() (basemodels.SyncStats, error) { return s.clients.Sync(ctx) }},
		{"tasks", func() (basemodels.SyncStats, error) { return s.tasks.Sync(ctx, start, end, "") }},
		{"eod", func() (basemodels.SyncStats, error) { return s.eod.Sync(ctx, start, end) }},
		{"attendance", func() (basemodels.SyncStats, error) { return s.attendance.Sync(ctx, start, end) }},
	}

	for _, step := range steps {
		stats, err := step.run()
		report.Entities[step.name] = stats
		if err != nil {
			report.Failed = append(report.Failed, step.name)
			log.WithError(err).WithFields(map[string]interface{}{
				"runID":  report.RunID,
				"entity": step.name,
			}).Error("Entity sync failed")
			s.mailer.SendSyncAlert(report.RunID, step.name, err)
		}
	}

	log.WithFields(map[string]interface{}{
		"runID":  report.RunID,
		"failed": report.Failed,
	}).Info("Full sync run finished")

	return report
}
