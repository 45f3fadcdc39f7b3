package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ftth_backend/internals/features/users/auth/controller"
	rateLimiter "ftth_backend/internals/middlewares"
	authMiddleware "ftth_backend/internals/middlewares/auth"
)

// Base: /api/auth
func AuthRoutes(router fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := router.Group("/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/refresh-token", authController.RefreshToken)

	// 🔐 Protected
	protected := baseAuth.Group("", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", authController.Logout)
	protected.Get("/me", authController.Me)
	protected.Post("/change-password", authController.ChangePassword)
}
