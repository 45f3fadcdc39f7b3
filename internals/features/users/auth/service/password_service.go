package service

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ftth_backend/internals/configs"
	authRepo "ftth_backend/internals/features/users/auth/repository"
	userRepo "ftth_backend/internals/features/users/user/repository"
	userService "ftth_backend/internals/features/users/user/service"
	helper "ftth_backend/internals/helpers"
)

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,nefield=CurrentPassword"`
}

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input ChangePasswordRequest
	if ok, err := helper.ParseAndValidate(c, &input); !ok {
		return err
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	users := userRepo.NewUserRepository(db)
	user, err := users.FindByID(ctx, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}

	if err := CheckPasswordHash(user.Password, input.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	newHash, err := userService.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password baru")
	}
	if err := users.UpdatePassword(ctx, userID, newHash); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update password")
	}

	// sesi lain harus login ulang
	if err := authRepo.RevokeAllForUser(ctx, db, userID, nowUTC()); err != nil {
		configs.Log.WithField("user_id", userID).Warnf("[AUTH] revoke refresh gagal: %v", err)
	}
	return helper.JsonUpdated(c, "Password berhasil diubah", nil)
}
