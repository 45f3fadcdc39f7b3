package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ftth_backend/internals/constants"
	"ftth_backend/internals/features/users/user/controller"
	authMiddleware "ftth_backend/internals/middlewares/auth"
)

// Base: /api/users (admin only). Router sudah melewati AuthMiddleware.
func UserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	g := router.Group("/users", authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manajemen user"), constants.AdminOnly...))
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Post("/:id/reset-password", ctrl.ResetPassword)
	g.Delete("/:id", ctrl.Deactivate)
}
