// Package router registers the visit analytics routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	analyticshdl "fieldpulse/internal/api/analytics/handler"
	"fieldpulse/internal/api/middleware"
)

// Register wires the analytics routes onto v1. The per-employee views
// allow any authenticated caller (scoping pins sales reps to their own
// data); the team-wide views are admin and manager only.
func Register(v1 fiber.Router, h *analyticshdl.AnalyticsHandler, auth *middleware.Auth) {
	group := v1.Group("/analytics")
	group.Get("/visits", h.Visits, auth.RequireRoles())
	group.Get("/area-wise", h.AreaWise, auth.RequireRoles())
	group.Get("/school-buckets", h.Buckets, auth.RequireRoles())
	group.Get("/overview", h.Overview, auth.RequireRoles(middleware.RoleAdmin, middleware.RoleManager))
	group.Get("/drilldown", h.Drilldown, auth.RequireRoles(middleware.RoleAdmin, middleware.RoleManager))
}
