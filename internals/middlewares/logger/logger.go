package logger

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// AccessFormat: request id ikut dicetak agar bisa dicocokkan dengan log logrus.
const AccessFormat = "[${time}] ${locals:requestid} ${locals:user_id} ${ip} - ${method} ${path} - ${status} - ${latency}\n"

// LoggerMiddleware: access log ke stdout.
func LoggerMiddleware() fiber.Handler {
	return New(os.Stdout)
}

// New menulis access log ke w (WIB).
func New(w io.Writer) fiber.Handler {
	return logger.New(logger.Config{
		Output:     w,
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     AccessFormat,
	})
}
