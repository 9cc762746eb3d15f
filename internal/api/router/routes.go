// Package router assembles the full route tree.
package router

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"

	analyticshdl "fieldpulse/internal/api/analytics/handler"
	analyticsroutes "fieldpulse/internal/api/analytics/router"
	attendancehdl "fieldpulse/internal/api/attendance/handler"
	attendanceroutes "fieldpulse/internal/api/attendance/router"
	authhdl "fieldpulse/internal/api/auth/handler"
	authroutes "fieldpulse/internal/api/auth/router"
	clienthdl "fieldpulse/internal/api/client/handler"
	clientroutes "fieldpulse/internal/api/client/router"
	empanalyticshdl "fieldpulse/internal/api/empanalytics/handler"
	empanalyticsroutes "fieldpulse/internal/api/empanalytics/router"
	employeehdl "fieldpulse/internal/api/employee/handler"
	employeeroutes "fieldpulse/internal/api/employee/router"
	eodhdl "fieldpulse/internal/api/eod/handler"
	eodroutes "fieldpulse/internal/api/eod/router"
	"fieldpulse/internal/api/middleware"
	synchdl "fieldpulse/internal/api/sync/handler"
	syncroutes "fieldpulse/internal/api/sync/router"
	taskhdl "fieldpulse/internal/api/task/handler"
	taskroutes "fieldpulse/internal/api/task/router"
	webhookhdl "fieldpulse/internal/api/webhook/handler"
	webhookroutes "fieldpulse/internal/api/webhook/router"
	"fieldpulse/config"
	"fieldpulse/internal/common"
)

// Handlers bundles every domain handler for route registration.
type Handlers struct {
	Auth       *authhdl.AuthHandler
	Employees  *employeehdl.EmployeeHandler
	Clients    *clienthdl.ClientHandler
	Tasks      *taskhdl.TaskHandler
	Eod        *eodhdl.EodHandler
	Attendance *attendancehdl.AttendanceHandler
	Sync       *synchdl.SyncHandler
	Webhooks   *webhookhdl.WebhookHandler
	Analytics  *analyticshdl.AnalyticsHandler
	Presence   *empanalyticshdl.EmpAnalyticsHandler
}

// SetupRoutes mounts the health check, the webhook surface and the
// versioned API tree.
func SetupRoutes(app *fiber.App, cfg *config.Configuration, db *mongo.Database, auth *middleware.Auth, h Handlers) {
	app.Get("/health", func(c fiber.Ctx) error {
		if err := db.Client().Ping(c.Context(), nil); err != nil {
			return c.Status(common.StatusServiceUnavailable).JSON(fiber.Map{
				"status":   "unhealthy",
				"database": "unreachable",
			})
		}
		return c.JSON(fiber.Map{
			"status":   "healthy",
			"database": "ok",
		})
	})

	webhookroutes.Register(app, cfg, h.Webhooks)

	v1 := app.Group("/api/v1")
	authroutes.Register(v1, h.Auth, auth)
	employeeroutes.Register(v1, h.Employees, auth)
	clientroutes.Register(v1, h.Clients, auth)
	taskroutes.Register(v1, h.Tasks, auth)
	eodroutes.Register(v1, h.Eod, auth)
	attendanceroutes.Register(v1, h.Attendance, auth)
	syncroutes.Register(v1, h.Sync, auth)
	analyticsroutes.Register(v1, h.Analytics, auth)
	empanalyticsroutes.Register(v1, h.Presence, auth)
}
