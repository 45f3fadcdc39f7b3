package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ftth_backend/internals/features/dashboards/controller"
)

// Base: /api/dashboards (read-only, semua role)
func DashboardRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)

	g := router.Group("/dashboards")
	g.Get("/summary", ctrl.Summary)
	g.Get("/by-regional", ctrl.ByRegional)
	g.Get("/by-progress", ctrl.ByProgress)
	g.Get("/by-status", ctrl.ByStatus)
	g.Get("/by-uic", ctrl.ByUIC)
	g.Get("/ai-summary", ctrl.AISummary)
}
