package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"ftth_backend/internals/configs"
)

// RecoveryMiddleware menangkap panic dan mengembalikan error 500
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			configs.Log.WithFields(configs.Fields{
				"method": c.Method(),
				"path":   c.Path(),
			}).Errorf("💥 panic: %v", e)
		},
	})
}
