package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "ftth_backend/internals/features/dashboards/route"
	logRoute "ftth_backend/internals/features/projects/logs/route"
	projectRoute "ftth_backend/internals/features/projects/project/route"
)

func ProjectRoutes(private fiber.Router, db *gorm.DB) {
	// logs dulu: /projects/:id/logs sebelum /projects/:id
	logRoute.ProjectLogRoutes(private, db)
	projectRoute.ProjectRoutes(private, db)
}

func DashboardRoutes(private fiber.Router, db *gorm.DB) {
	dashboardRoute.DashboardRoutes(private, db)
}
