package logger

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLogCarriesRequestAndUser(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "req-123")
		c.Locals("user_id", "7b0e8f7e-3c5e-4a43-9b7a-3f1f0f3a2b11")
		return c.Next()
	})
	app.Use(New(&buf))
	app.Get("/api/projects", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("GET", "/api/projects", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	line := buf.String()
	assert.Contains(t, line, "req-123")
	assert.Contains(t, line, "7b0e8f7e-3c5e-4a43-9b7a-3f1f0f3a2b11")
	assert.Contains(t, line, "GET /api/projects - 200")
}
