package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"

	"ftth_backend/internals/configs"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation: error unique constraint dari Postgres (pgx).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// ErrorHandler global fiber: *fiber.Error → status sesuai, selain itu 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	if IsUniqueViolation(err) {
		return JsonError(c, fiber.StatusConflict, err.Error())
	}
	configs.Log.WithFields(configs.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Errorf("❌ unhandled error: %v", err)
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// FromStoreError: error dari DB → response; pesan store diteruskan apa adanya.
func FromStoreError(c *fiber.Ctx, err error) error {
	if IsUniqueViolation(err) {
		return JsonError(c, fiber.StatusConflict, err.Error())
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
