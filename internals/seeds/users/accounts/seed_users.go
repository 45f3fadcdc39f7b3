package accounts

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"ftth_backend/internals/configs"
	"ftth_backend/internals/features/users/user/model"
	userRepo "ftth_backend/internals/features/users/user/repository"
	userService "ftth_backend/internals/features/users/user/service"
)

type UserSeed struct {
	UserName string  `json:"user_name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"full_name"`
	Role     string  `json:"role"`
	Division *string `json:"division"`
}

// SeedUsersFromJSON: user yang email/username-nya sudah ada dilewati.
// Mengembalikan jumlah user baru.
func SeedUsersFromJSON(ctx context.Context, db *gorm.DB, filePath string) (int, error) {
	configs.Log.Infof("📥 Membaca file user: %s", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("baca file seed: %w", err)
	}
	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode JSON: %w", err)
	}
	return SeedUsers(ctx, db, inputs)
}

func SeedUsers(ctx context.Context, db *gorm.DB, inputs []UserSeed) (int, error) {
	repo := userRepo.NewUserRepository(db)
	created := 0
	for _, data := range inputs {
		email := strings.ToLower(strings.TrimSpace(data.Email))
		if _, err := repo.FindByIdentifier(ctx, email); err == nil {
			configs.Log.Infof("ℹ️ User '%s' sudah ada, dilewati.", email)
			continue
		} else if !errors.Is(err, userRepo.ErrUserNotFound) {
			return created, err
		}

		// 🔐 Hash password sebelum disimpan
		hash, err := userService.HashPassword(data.Password)
		if err != nil {
			return created, err
		}
		role := strings.ToLower(strings.TrimSpace(data.Role))
		if role == "" {
			role = "user"
		}
		var division *string
		if data.Division != nil && strings.TrimSpace(*data.Division) != "" {
			d := strings.ToUpper(strings.TrimSpace(*data.Division))
			division = &d
		}

		u := model.UserModel{
			UserName: strings.TrimSpace(data.UserName),
			Email:    email,
			Password: hash,
			FullName: data.FullName,
			Role:     role,
			Division: division,
			IsActive: true,
		}
		if err := repo.Create(ctx, &u); err != nil {
			return created, fmt.Errorf("seed user %s: %w", email, err)
		}
		created++
		configs.Log.Infof("✅ User '%s' (%s) dibuat", email, role)
	}
	return created, nil
}
