package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var Validate = validator.New()

// ValidateStruct: nil bila valid, map field → pesan bila tidak.
func ValidateStruct(v any) map[string][]string {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return map[string][]string{"_": {err.Error()}}
	}
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		out[field] = append(out[field], fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "email":
		return "format email tidak valid"
	case "min":
		return "minimal " + fe.Param() + " karakter"
	case "max":
		return "maksimal " + fe.Param() + " karakter"
	case "oneof":
		return "harus salah satu dari: " + fe.Param()
	case "uuid":
		return "harus UUID"
	default:
		return "tidak valid (" + fe.Tag() + ")"
	}
}

// ParseAndValidate: BodyParser + validator dalam satu langkah.
// Mengembalikan error yang sudah berupa response.
func ParseAndValidate(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if fe := ValidateStruct(out); fe != nil {
		return false, JsonValidationError(c, fe)
	}
	return true, nil
}
