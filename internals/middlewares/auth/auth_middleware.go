package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ftth_backend/internals/configs"
	authRepo "ftth_backend/internals/features/users/auth/repository"
	authService "ftth_backend/internals/features/users/auth/service"
	userRepo "ftth_backend/internals/features/users/user/repository"
	helper "ftth_backend/internals/helpers"
)

// Path publik yang di-skip auth
var skipPaths = map[string]struct{}{
	"/api/auth/login":         {},
	"/api/auth/refresh-token": {},
}

// Now bisa diganti di test.
var Now = func() time.Time { return time.Now().UTC() }

func AuthMiddleware(db *gorm.DB) fiber.Handler {
	users := userRepo.NewUserRepository(db)

	return func(c *fiber.Ctx) error {
		// 1) Skip path tertentu
		if _, ok := skipPaths[c.Path()]; ok {
			return c.Next()
		}

		// 2) Authorization Bearer atau cookie access_token
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token tidak ada")
		}

		// 3) Blacklist (token yang sudah logout)
		ctx := c.UserContext()
		blacklisted, err := authRepo.IsBlacklisted(ctx, db, tokenString)
		if err != nil {
			configs.Log.Errorf("[AUTH] DB error saat cek blacklist: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if blacklisted {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token sudah logout")
		}

		// 4) Parse + exp (skew 30 detik)
		if configs.JWTSecret == "" {
			configs.Log.Error("[AUTH] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}
		claims, err := authService.ParseToken(tokenString, configs.JWTSecret, authService.TokenTypeAccess, Now())
		if err != nil {
			if errors.Is(err, authService.ErrTokenExpired) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
			}
			configs.Log.Debugf("[AUTH] token ditolak: %v", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token tidak valid")
		}

		// 5) User masih aktif
		if err := ensureUserActive(c, users, claims.UserID); err != nil {
			return err
		}

		// 6) Simpan klaim ke Locals
		helper.SetRawAccessToken(c, tokenString)
		c.Locals("user_id", claims.UserID.String())
		c.Locals("userRole", claims.Role)
		c.Locals("user_name", claims.UserName)
		c.Locals("division", claims.Division)
		return c.Next()
	}
}

func ensureUserActive(c *fiber.Ctx, users *userRepo.UserRepository, id uuid.UUID) error {
	active, err := users.IsActive(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User tidak ditemukan")
		}
		configs.Log.Errorf("[AUTH] ensureUserActive: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !active {
		return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	return nil
}
