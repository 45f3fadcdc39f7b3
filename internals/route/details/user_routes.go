package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "ftth_backend/internals/features/users/user/route"
)

// private: sudah melewati AuthMiddleware
func UserRoutes(private fiber.Router, db *gorm.DB) {
	userRoute.UserRoutes(private, db)
}
