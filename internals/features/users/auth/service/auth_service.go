package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ftth_backend/internals/configs"
	authModel "ftth_backend/internals/features/users/auth/model"
	authRepo "ftth_backend/internals/features/users/auth/repository"
	userDTO "ftth_backend/internals/features/users/user/dto"
	userModel "ftth_backend/internals/features/users/user/model"
	userRepo "ftth_backend/internals/features/users/user/repository"
	helpers "ftth_backend/internals/helpers"
)

/* ==========================
   Small Helpers
========================== */

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	if s := strings.TrimSpace(configs.JWTSecret); s != "" {
		return s, nil
	}
	return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
}

func getRefreshSecret() (string, error) {
	if s := strings.TrimSpace(configs.JWTRefreshSecret); s != "" {
		return s, nil
	}
	return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
}

func accessTTL() time.Duration {
	if configs.App.AccessTokenTTL > 0 {
		return configs.App.AccessTokenTTL
	}
	return accessTTLDefault
}

func refreshTTL() time.Duration {
	if configs.App.RefreshTokenTTL > 0 {
		return configs.App.RefreshTokenTTL
	}
	return refreshTTLDefault
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

/* ==========================
   LOGIN
========================== */

type LoginRequest struct {
	// email atau user_name
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input LoginRequest
	if ok, err := helpers.ParseAndValidate(c, &input); !ok {
		return err
	}

	users := userRepo.NewUserRepository(db)
	user, err := users.FindByIdentifier(c.UserContext(), input.Identifier)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Email/username atau password salah")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	if err := CheckPasswordHash(user.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email/username atau password salah")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	now := nowUTC()
	if err := users.TouchLastLogin(c.UserContext(), user.ID, now); err != nil {
		configs.Log.WithField("user_id", user.ID).Warnf("[AUTH] gagal update last_login_at: %v", err)
	}
	user.LastLoginAt = &now

	return issueTokens(c, db, *user, now, "Login berhasil")
}

// issueTokens: sign access+refresh, simpan hash refresh, set cookie.
func issueTokens(c *fiber.Ctx, db *gorm.DB, user userModel.UserModel, now time.Time, msg string) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return err
	}

	accessToken, err := signToken(buildAccessClaims(user, now, accessTTL()), jwtSecret)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refreshToken, err := signToken(buildRefreshClaims(user.ID, now, refreshTTL()), refreshSecret)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	if err := authRepo.CreateRefreshToken(c.UserContext(), db, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		TokenHash: computeRefreshHash(refreshToken, refreshSecret),
		ExpiresAt: now.Add(refreshTTL()),
		UserAgent: strptr(c.Get(fiber.HeaderUserAgent)),
		IP:        strptr(c.IP()),
	}); err != nil {
		configs.Log.Errorf("[AUTH] gagal simpan refresh token: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	return helpers.JsonOK(c, msg, fiber.Map{
		"user":          userDTO.FromModel(&user),
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"expires_in":    int64(accessTTL().Seconds()),
	})
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     helpers.AccessCookieName,
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTL()),
	})
	c.Cookie(&fiber.Cookie{
		Name:     helpers.RefreshCookie,
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTL()),
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{helpers.AccessCookieName, helpers.RefreshCookie} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}
}

/* ==========================
   REFRESH TOKEN (rotate)
========================== */

// POST /api/auth/refresh-token, dari cookie refresh_token atau body {"refresh_token": "..."}
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	raw := helpers.GetRefreshTokenFromCookie(c)
	if raw == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		raw = strings.TrimSpace(body.RefreshToken)
	}
	if raw == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return err
	}
	now := nowUTC()
	claims, err := ParseToken(raw, refreshSecret, TokenTypeRefresh, now)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	ctx := c.UserContext()
	rt, err := authRepo.FindActiveRefreshToken(ctx, db, computeRefreshHash(raw, refreshSecret), now)
	if err != nil {
		if errors.Is(err, authRepo.ErrRefreshNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if rt.UserID != claims.UserID {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	user, err := userRepo.NewUserRepository(db).FindByID(ctx, claims.UserID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: token lama tidak bisa dipakai lagi
	if err := authRepo.RevokeRefreshToken(ctx, db, rt.ID, now); err != nil {
		configs.Log.Warnf("[AUTH] revoke refresh lama gagal: %v", err)
	}
	return issueTokens(c, db, *user, now, "Token diperbarui")
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	ctx := c.UserContext()
	now := nowUTC()

	accessToken := helpers.GetRawAccessToken(c)
	if accessToken != "" {
		secret, _ := getJWTSecret()
		if err := authRepo.BlacklistToken(ctx, db, accessToken, blacklistUntil(accessToken, secret, now)); err != nil {
			configs.Log.Warnf("[AUTH] gagal blacklist token: %v", err)
		}
	}

	if rt := helpers.GetRefreshTokenFromCookie(c); rt != "" {
		if secret, err := getRefreshSecret(); err == nil {
			_ = authRepo.RevokeRefreshTokenByHash(ctx, db, computeRefreshHash(rt, secret), now)
		}
	}

	clearAuthCookies(c)
	return helpers.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   ME
========================== */

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	user, err := userRepo.NewUserRepository(db).FindByID(c.UserContext(), userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helpers.JsonOK(c, "Profil user", userDTO.FromModel(user))
}
