package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ftth_backend/internals/features/projects/logs/controller"
)

func ProjectLogRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProjectLogController(db)
	router.Get("/projects/:id/logs", ctrl.ListByProject)
}
