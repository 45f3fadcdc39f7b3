package seeds

import (
	"context"

	"gorm.io/gorm"

	users "ftth_backend/internals/seeds/users/accounts"
)

const DefaultUsersFile = "internals/seeds/users/accounts/data_users.json"

func RunAllSeeds(ctx context.Context, db *gorm.DB, usersFile string) error {
	if usersFile == "" {
		usersFile = DefaultUsersFile
	}
	//* User
	_, err := users.SeedUsersFromJSON(ctx, db, usersFile)
	return err
}
