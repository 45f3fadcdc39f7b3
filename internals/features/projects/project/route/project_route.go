package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ftth_backend/internals/constants"
	"ftth_backend/internals/features/projects/project/controller"
	rateLimiter "ftth_backend/internals/middlewares"
	authMiddleware "ftth_backend/internals/middlewares/auth"
)

// Base: /api/projects. Router sudah melewati AuthMiddleware.
func ProjectRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProjectController(db)

	g := router.Group("/projects")

	// 👀 semua role
	g.Get("/", ctrl.List)
	g.Get("/lookup", ctrl.Lookup)
	g.Get("/import/template", ctrl.Template)
	g.Get("/export", ctrl.Export)
	g.Get("/:id", ctrl.GetByID)

	// ✍️ admin & user (viewer read-only)
	editor := authMiddleware.OnlyRoles(constants.RoleErrorEditor("project"), constants.EditorRoles...)
	g.Post("/", editor, ctrl.Create)
	g.Post("/import", editor, rateLimiter.ImportRateLimiter(), ctrl.Import)
	g.Put("/:id", editor, ctrl.Update)
	g.Post("/:id/archive", editor, ctrl.Archive)
	g.Post("/:id/restore", editor, ctrl.Restore)
}
