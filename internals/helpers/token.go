package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	LocRawToken      = "raw_token"
	AccessCookieName = "access_token"
	RefreshCookie    = "refresh_token"
)

// GetRawAccessToken: Authorization Bearer → Locals("raw_token") → cookie access_token.
func GetRawAccessToken(c *fiber.Ctx) string {
	if tok := BearerToken(c.Get(fiber.HeaderAuthorization)); tok != "" {
		return tok
	}
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(c.Cookies(AccessCookieName))
}

// BearerToken memotong prefix "Bearer " (case-insensitive).
func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	const p = "bearer "
	if len(header) > len(p) && strings.EqualFold(header[:len(p)], p) {
		return strings.TrimSpace(header[len(p):])
	}
	return ""
}

func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies(RefreshCookie))
}

func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if raw = strings.TrimSpace(raw); raw != "" {
		c.Locals(LocRawToken, raw)
	}
}
