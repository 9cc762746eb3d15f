package main

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	analyticshdl "fieldpulse/internal/api/analytics/handler"
	analyticssvc "fieldpulse/internal/api/analytics/service"
	attendancehdl "fieldpulse/internal/api/attendance/handler"
	attendancesvc "fieldpulse/internal/api/attendance/service"
	authhdl "fieldpulse/internal/api/auth/handler"
	authsvc "fieldpulse/internal/api/auth/service"
	clienthdl "fieldpulse/internal/api/client/handler"
	clientsvc "fieldpulse/internal/api/client/service"
	empanalyticshdl "fieldpulse/internal/api/empanalytics/handler"
	empanalyticssvc "fieldpulse/internal/api/empanalytics/service"
	employeehdl "fieldpulse/internal/api/employee/handler"
	employeesvc "fieldpulse/internal/api/employee/service"
	eodhdl "fieldpulse/internal/api/eod/handler"
	eodsvc "fieldpulse/internal/api/eod/service"
	"fieldpulse/internal/api/middleware"
	"fieldpulse/internal/api/router"
	synchdl "fieldpulse/internal/api/sync/handler"
	syncsvc "fieldpulse/internal/api/sync/service"
	taskhdl "fieldpulse/internal/api/task/handler"
	tasksvc "fieldpulse/internal/api/task/service"
	webhookhdl "fieldpulse/internal/api/webhook/handler"
	"fieldpulse/config"
	"fieldpulse/internal/database"
	"fieldpulse/internal/logger"
	"fieldpulse/internal/notification"
	"fieldpulse/internal/unolo"
)

// application holds the wired object graph. Everything is built here
// and injected; no package carries global state.
type application struct {
	cfg      *config.Configuration
	client   *mongo.Client
	db       *mongo.Database
	auth     *middleware.Auth
	handlers router.Handlers
}

// buildApplication connects the database, ensures indexes and wires
// every service and handler.
func buildApplication(cfg *config.Configuration) (*application, error) {
	log := logger.GetAppLogger()

	client, err := database.GetInstance(cfg)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	db := client.Database(cfg.MongoDB_DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("index bootstrap failed: %w", err)
	}

	collections := database.NewCollectionRegistry(db)
	source := unolo.NewClient(cfg)
	mailer := notification.NewMailer(cfg)

	authService, err := authsvc.NewAuthService(collections, cfg)
	if err != nil {
		return nil, err
	}
	if err := authService.EnsureDefaultAdmin(ctx); err != nil {
		log.WithError(err).Warn("Default admin bootstrap failed")
	}

	employeeService, err := employeesvc.NewEmployeeService(collections, source, authService)
	if err != nil {
		return nil, err
	}
	clientService, err := clientsvc.NewClientService(collections, source)
	if err != nil {
		return nil, err
	}
	taskService, err := tasksvc.NewTaskService(collections, source)
	if err != nil {
		return nil, err
	}
	eodService, err := eodsvc.NewEodService(collections, source)
	if err != nil {
		return nil, err
	}
	attendanceService, err := attendancesvc.NewAttendanceService(collections, source)
	if err != nil {
		return nil, err
	}
	analyticsService, err := analyticssvc.NewAnalyticsService(collections, employeeService, clientService)
	if err != nil {
		return nil, err
	}
	presenceService := empanalyticssvc.NewEmpAnalyticsService(employeeService, eodService)
	syncService := syncsvc.NewSyncService(employeeService, clientService, taskService, eodService, attendanceService, mailer)

	handlers := router.Handlers{
		Auth:       authhdl.NewAuthHandler(authService),
		Employees:  employeehdl.NewEmployeeHandler(employeeService),
		Clients:    clienthdl.NewClientHandler(clientService),
		Tasks:      taskhdl.NewTaskHandler(taskService),
		Eod:        eodhdl.NewEodHandler(eodService),
		Attendance: attendancehdl.NewAttendanceHandler(attendanceService),
		Sync:       synchdl.NewSyncHandler(syncService, employeeService, clientService, taskService, eodService, attendanceService),
		Webhooks:   webhookhdl.NewWebhookHandler(cfg, taskService, clientService),
		Analytics:  analyticshdl.NewAnalyticsHandler(analyticsService),
		Presence:   empanalyticshdl.NewEmpAnalyticsHandler(presenceService),
	}

	log.Info("Application wiring completed")

	return &application{
		cfg:      cfg,
		client:   client,
		db:       db,
		auth:     middleware.NewAuth(cfg),
		handlers: handlers,
	}, nil
}

// close releases the application's external resources.
func (a *application) close() {
	if a.client != nil {
		_ = database.CloseInstance(a.client)
	}
}
