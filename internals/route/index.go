package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ftth_backend/internals/configs"
	authMiddleware "ftth_backend/internals/middlewares/auth"
	routeDetails "ftth_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===================== AUTH =====================
	configs.Log.Info("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(api, db)

	// ===================== PRIVATE (JWT) =====================
	private := api.Group("", authMiddleware.AuthMiddleware(db))

	configs.Log.Info("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(private, db)

	configs.Log.Info("[INFO] Mounting Project routes...")
	routeDetails.ProjectRoutes(private, db)

	configs.Log.Info("[INFO] Mounting Dashboard routes...")
	routeDetails.DashboardRoutes(private, db)
}
