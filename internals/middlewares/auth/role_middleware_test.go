package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftth_backend/internals/constants"
)

func roleApp(role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("userRole", role)
		}
		return c.Next()
	})
	app.Post("/projects", OnlyRoles(constants.RoleErrorEditor("project"), constants.EditorRoles...), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	return app
}

func TestOnlyRoles(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{"admin", fiber.StatusCreated},
		{"USER", fiber.StatusCreated},
		{"viewer", fiber.StatusForbidden},
		{"", fiber.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			resp, err := roleApp(tc.role).Test(httptest.NewRequest("POST", "/projects", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}
