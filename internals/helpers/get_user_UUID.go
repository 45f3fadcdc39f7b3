package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDParam membaca :name sebagai UUID, 400 bila tidak valid.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" tidak valid")
	}
	return id, nil
}

// GetRole: role dari token (c.Locals("userRole")).
func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return strings.ToLower(strings.TrimSpace(role))
}

// GetDivision: divisi dari token (c.Locals("division")).
func GetDivision(c *fiber.Ctx) string {
	div, _ := c.Locals("division").(string)
	return strings.ToUpper(strings.TrimSpace(div))
}
